// Package order provides the Order aggregate of the order tracking domain.
//
// The package includes:
//   - Order: the aggregate root holding placement time, customer and driver
//     references and the delivery stamp
//   - Status: the two-state lifecycle derived from the delivery stamp
//
// Key business rules:
//   - Orders are identified by a store-assigned ID and stamped with the time
//     they were placed
//   - Customer and driver references are stored as given; they are not checked
//     against the customer or driver collections
//   - The lifecycle is one way: Placed -> Delivered
//   - Completing an order stamps the delivery time on every call; the stamp never
//     moves backwards and is never cleared
//   - Toppings are not part of the aggregate; they are derived from
//     OrderTopping rows by the read side
package order
