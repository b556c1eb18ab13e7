// Package menu models a restaurant's menu items and their stock.
//
// Key business rules:
//   - An item belongs to exactly one restaurant
//   - Unit price is a non-negative amount
//   - Quantity on hand never goes negative; Reserve refuses to oversell
package menu
