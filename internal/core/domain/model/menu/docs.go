// Package menu provides the Menu aggregate, a priced bundle of products sold as
// a single item, and MenuProduct, the owned line pairing a product with a quantity.
//
// Key business rules:
//   - A menu belongs to exactly one menu group
//   - A menu's price never exceeds the sum of price × quantity over its menu products
//   - Adding menu products is all-or-nothing: a rejected batch leaves the menu untouched
//   - A menu may be created with a positive price and no menu products yet
package menu
