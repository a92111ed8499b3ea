package ports

import "github.com/chukwumela909/Web-App-sub001/internal/domain/entity"

// ReceiptData datos para imprimir el comprobante de una venta.
type ReceiptData struct {
	BusinessName string
	Branch       *entity.Branch
	Sale         *entity.Sale
}

// ReceiptGenerator genera el PDF del comprobante de venta.
type ReceiptGenerator interface {
	GenerateReceipt(data ReceiptData) ([]byte, error)
}
