// Package successione manages a shared-expense ledger for an estate
// settlement: a set of heirs with percentage shares, the expenses they split
// and pre-pay, and the direct transfers between them.
//
// The package computes one derived value above all: the net settlement
// balance of each heir (positive means the heir still owes money into the
// pool). Around it sit the expense filter, the table sort engine, and the
// data file codec. Rendering lives in the renderer and export subpackages,
// and the scs command ties everything together.
package successione
