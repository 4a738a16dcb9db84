// Package models defines the core domain models for Splitbill.
//
// # Models
//
//   - Dish: A purchasable item with a fixed price, shared among zero or more eaters
//   - Person: A diner participating in the split, with a derived running total
//   - Receipt: An immutable snapshot of a finalized bill, kept in the archive
//
// Participants are identified by name strings; a trimmed name is the unique
// key for both dishes and people within one session.
//
// # Design Principles
//
// 1. **Plain data**: models hold state plus the small behaviors that keep the
// state consistent (idempotent eater registration, shared-price division).
//
// 2. **Derived totals**: Person.Total is always recomputed from the dish set,
// never trusted incrementally across mutations.
//
// 3. **Avoid circular references**: dishes record eater names, not Person
// pointers, so the two registries stay independent.
package models
