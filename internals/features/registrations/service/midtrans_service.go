package service

import (
	"fmt"
	"log"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	eventModel "techclub_backend/internals/features/events/model"
	"techclub_backend/internals/features/registrations/model"
)

var (
	snapClient  snap.Client
	snapEnabled bool
)

// InitMidtrans menginisialisasi Midtrans Snap Client; server key kosong
// berarti pembayaran online dinonaktifkan (semua event diperlakukan manual).
func InitMidtrans(serverKey string) {
	if serverKey == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY belum diset, pembayaran Snap dinonaktifkan")
		return
	}
	snapClient.New(serverKey, midtrans.Sandbox)
	snapEnabled = true
}

func SnapEnabled() bool { return snapEnabled }

// GenerateSnapToken membuat token Snap untuk registrasi event berbayar.
func GenerateSnapToken(reg *model.RegistrationModel, ev *eventModel.EventModel) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("reg-%s", reg.RegistrationID),
			GrossAmt: int64(ev.EventPrice),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: reg.RegistrationName,
			Phone: reg.RegistrationWhatsapp,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    ev.EventID.String(),
			Name:  ev.EventTitle,
			Price: int64(ev.EventPrice),
			Qty:   1,
		}},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
