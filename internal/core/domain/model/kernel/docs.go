// Package kernel provides core domain primitives shared by the food ordering aggregates.
//
// The package includes:
//   - ID: a positive integer identity used by customers, restaurants, menu items,
//     delivery partners and orders
//   - Money: a non-negative decimal amount with two-digit currency precision
//
// Both are immutable value objects; their zero values are invalid and are rejected by Validate.
package kernel
