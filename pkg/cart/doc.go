// Package cart holds the shopping cart contract consumed by checkout, plus
// two implementations: an in-process MemoryStore and a RedisStore.
//
// Checkout only reads a cart, through Reader: the ordered item list and the
// total price. Writer adds the operations the storefront needs to fill a
// cart in the first place.
//
// Prices are Money values, an integer amount of cents, so totals are exact:
//
//	total := cart.MustParseMoney("10.00").Add(cart.MustParseMoney("15.50")) // $25.50
package cart
