package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateTrackingQRCode renders a PNG QR code encoding the live-tracking
	// URL for an order.
	GenerateTrackingQRCode(orderID string) ([]byte, error)
}
