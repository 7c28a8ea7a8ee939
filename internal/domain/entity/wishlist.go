package entity

// WishlistEntry vincula un producto con su id remoto en la wishlist de la
// cuenta. Invariante: un productID mapea como máximo a un remoteID.
type WishlistEntry struct {
	ProductID string
	RemoteID  int64
}
