// Package products calls the Products section (version 2011-10-01):
// competitive offers for a SKU, the seller's own prices and catalog
// matches for product identifiers.
//
// Amounts are kept as the decimal strings the service sends.
package products
