// Package principles holds the "good" side of each SOLID example. The "bad"
// side lives only in the catalogue notes; the types here are what the notes
// redesign it into.
package principles
