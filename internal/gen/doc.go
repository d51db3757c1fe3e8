// Package gen provides deterministic code generation of type declarations
// from inferred shapes.
//
// Generation is a single depth-first pass over the shape. At every node the
// generator consults the hint index, narrowed to the node's JSON pointer, and
// lets the winning hint replace the inferred structure.
//
// Rendering rules for the TypeScript type alias backend:
//   - null, any and bottom become any; integers and floats become number
//   - tuples whose elements join to a concrete type become Array<T>,
//     genuinely mixed tuples stay fixed-length [A, B]
//   - objects keep their member order; names that are not identifiers are quoted
//   - optional members are marked with "?" and unioned with undefined unless
//     missing fields are defaulted
//   - maps become { [key: string]: T }
package gen
