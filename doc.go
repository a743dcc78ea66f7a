/*
Package optkit provides two small algebraic sum types that Go lacks
natively: Option[T], an optional value that is either Some and contains
a value or None and does not, and Result[T, E], the outcome of a
fallible computation that is either Ok with a value or Err with an
error payload.

Intended audience for this package are:

▪︎ code that wants to make "may be absent" explicit in a signature
instead of overloading pointers or zero values

▪︎ code that carries computation outcomes around as values, for example
through channels or containers, rather than as (value, error) pairs

▪︎ callers converting between these types and the native Go idioms:
nilable pointers (FromPtr, Ptr) and (value, error) pairs (From, Get)

Both types are immutable value types. A given instance is in exactly
one variant, fixed at construction; every "transformation" (Map,
Filter, AndThen, ...) produces a new instance. There is no shared
state — the zero value of Option[T] is None, so absence costs nothing
and needs no singleton. Instances are therefore trivially safe to read
from any number of goroutines.

Both Option[T] and Result[T, E] are comparable structs whenever their
payload types are, and == implements structural equality: two None
values of a type are always equal, Some values compare by contained
value, and Ok/Err values compare by payload.

Only the unwrapping accessors (Unwrap, Expect, UnwrapErr, ExpectErr)
can fail, and they fail by panicking with *UnwrapError, the single
condition this package raises itself. Try is the converse boundary: it
runs a computation and traps any panic, converting it into an Err
value which never re-propagates.

# Status

Iterator and collection adapters (ranging over Options, collecting
Results) are deliberately left out for now.

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package optkit
