package settings

// Settings is the shop's singleton configuration record. An empty QRCode
// means no payment QR code has been configured yet.
type Settings struct {
	QRCode string `json:"qrCode"`
}
