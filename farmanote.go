// Package farmanote resolves free-text medicament brand names against the
// Spanish CIMA registry (cima.aemps.es). Given a name as a user typed it,
// it finds the matching registry record (retrying with orthographic
// variants for common typos), derives a clean display form of the brand
// plus its normalized active ingredients, and extracts a bounded
// "indicaciones" excerpt from the product's ficha técnica or prospecto.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or collaborator (e.g., cima/, http/,
// goquery/).
package farmanote
