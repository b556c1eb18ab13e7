// Package customer holds the customer profile consulted by order placement.
package customer
