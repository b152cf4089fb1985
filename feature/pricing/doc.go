// Package pricing consolidates vendor quotes into one estimate per catalog item.
//
// # Consolidation
//
// Every catalog item with a market hash name gets an index entry keyed by the hash name, or by
// "{hash name} {phase}" for doppler variants. The entry joins the vendor bundle of the hash name:
//
//   - Phase variants use only the per-phase prices of cstrade and buff163. Their steam and
//     skinport headline quotes stay empty and the buff headline is the phase price.
//   - Other items use all eight vendors, with steam resolved to its most recent valid window.
//
// Zero quotes are dropped and the remaining ones are combined with a power mean (p = -3), which
// sits close to the cheapest quote. Items with no bundle or no valid quote have no estimate.
// Duplicate keys keep the entry with the lowest catalog id and are reported as collisions.
//
// # Snapshots
//
// Builder loads the catalog, price feed, doppler phase map and exchange rates concurrently and
// produces an immutable Snapshot. A dataset that cannot be loaded is reported and treated as
// empty. The Service reads snapshots through a core/snapshot Holder, so a refresh swaps the whole
// snapshot at once.
package pricing
