// Package configs loads machine descriptions, message setting lines and the
// user's preferences.
//
// # Machine Descriptions
//
// A machine description names the alphabet, the number of rotor slots and
// pawls, and every rotor the machine may be loaded with. Two encodings are
// accepted. The native grammar is whitespace separated:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	5 3
//	I     MQ  (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta  N   (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B     R   (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)
//
// The type token is R (reflector), N (fixed) or M (moving) followed by the
// notch symbols of a moving rotor. The same content may be written as YAML
// in a .yaml or .yml file:
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	rotors: 5
//	pawls: 3
//	catalog:
//	  - name: I
//	    kind: moving
//	    notches: Q
//	    cycles: (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//
// LoadMachineConfig picks the decoder from the file extension.
//
// # Setting Lines
//
// Messages are preceded by a setting line naming the rotors for each slot,
// their starting positions and the plugboard pairs:
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//
// # User Configuration
//
// Preferences are stored in TOML at <UserConfigDir>/enigma/config.toml:
//
//	[defaults]
//	machine = "/home/me/machines/naval.conf"
//	group_size = 5
//	journal = "/home/me/.local/share/enigma/journal.jsonl"
//
// ENIGMA_CONFIG_DIR overrides the directory.
package configs
