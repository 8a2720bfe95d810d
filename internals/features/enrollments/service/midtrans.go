package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	courseModel "aprendia_backend/internals/features/lms/courses/model"
)

var SnapClient snap.Client

// InitMidtrans se llama en el bootstrap de la app.
// useProduction=true para Production, false para Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	FullName string
	Email    string
	Phone    string
}

// GenerateSnapToken crea la transacción Snap para la compra de un curso.
// El order_id lleva el id del curso para poder conciliar el webhook.
func GenerateSnapToken(course *courseModel.CourseModel, cust CustomerInput) (string, string, string, error) {
	if course.CoursePriceCOP <= 0 {
		return "", "", "", errors.New("el curso no tiene precio de venta")
	}

	orderID := fmt.Sprintf("course-%d-%s", course.CourseID, uuid.New().String())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(course.CoursePriceCOP),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FullName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       fmt.Sprintf("course-%d", course.CourseID),
				Price:    int64(course.CoursePriceCOP),
				Qty:      1,
				Name:     truncate(course.CourseTitle, 50),
				Category: "course",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", "", err
	}
	return orderID, resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
