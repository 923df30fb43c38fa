// Package enigma implements the cipher engine of an electromechanical rotor
// machine: alphabets, permutations in cycle notation, rotors, and the
// machine that steps them and routes a signal through them.
//
// What:
//
//   - Alphabet maps an ordered set of unique runes to indices 0..N-1.
//   - Permutation is built once from cycle notation such as "(AELT) (BK)"
//     and answers Permute/Invert in O(1) from precomputed tables.
//   - Rotor is a single tagged type (KindReflector, KindFixed, KindMoving)
//     wrapping a Permutation with a rotational setting.
//   - Catalog is a read-only set of named rotor templates.
//   - Machine owns numRotors slots (slot 0 is the reflector, the last slot
//     is the fast rotor) and a plugboard.
//
// Signal path for one symbol:
//
//	step rotors → plugboard → slots n-1..0 forward → slots 1..n-1 backward → plugboard
//
// Stepping:
//
// The fast rotor always advances. Every pawl sitting between two moving
// rotors i and i+1 drops into the notch of rotor i+1 when that rotor is at
// a notch, pushing both rotors. A rotor that is pushed by its own notch and
// also carried by its right neighbour therefore advances together with its
// left neighbour: the double step. All notch tests use the settings from
// before the step.
//
// Concurrency:
//
// A Machine mutates rotor settings on every conversion and must not be used
// from several goroutines at once. A Catalog is immutable and may be shared;
// InsertRotors clones each template so slots never alias.
//
// Errors:
//
//   - ErrDuplicateSymbol, ErrEmptyAlphabet: invalid alphabet.
//   - ErrUnknownSymbol: symbol or index outside the alphabet.
//   - ErrMalformedCycle: unbalanced brackets or repeated symbols.
//   - ErrConfigurationMismatch: pawl/rotor counts, slot layout, settings.
//
// All errors come from the internal/errors package and are matched with
// errors.Is.
package enigma
