// Package partnership keeps the books of a two-partner reselling business.
//
// Partner A funds bulk manufacturing and the shipments to the warehouse.
// Partner B funds the shipping from the warehouse to customers. Profit is
// split evenly, and each partner's settlement is derived from what they paid.
//
// The core functionalities include:
//   - Ledger Management: two append-only collections, inventory shipments and
//     orders, whose entries are validated on creation and never edited.
//   - Financial Summary: a stateless calculator deriving revenue, costs, profit
//     and each partner's net settlement with exact decimal arithmetic.
//   - Inventory Reconciliation: a stateless derivation of the warehouse stock
//     and direct shipments of every SKU.
//   - Data Persistence: a portable JSON document for export and import, and a
//     Gateway interface to store the ledger between runs.
//
// This package serves as the foundational logic for the `pbook` command-line
// tool.
package partnership
