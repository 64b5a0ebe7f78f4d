// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-plus/models"
)

// createPaymentIntent answers {"clientSecret": ...} for the posted price.
func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if !decodeBody(w, r, "*Handler.createPaymentIntent", &req) {
		return
	}

	intent, err := h.services.PaymentService.CreatePaymentIntent(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createPaymentIntent", err)
		return
	}

	writeResult(w, r, "*Handler.createPaymentIntent", map[string]string{"clientSecret": intent.ClientSecret})
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if !decodeBody(w, r, "*Handler.recordPayment", &payment) {
		return
	}

	result, err := h.services.PaymentService.RecordPayment(r.Context(), payment)
	if err != nil {
		writeError(w, r, "*Handler.recordPayment", err)
		return
	}

	writeResult(w, r, "*Handler.recordPayment", result)
}

func (h *Handler) getPayments(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.getPayments", err)
		return
	}

	payments, err := h.services.PaymentService.FindPayments(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.getPayments", err)
		return
	}

	writeList(w, r, "*Handler.getPayments", payments)
}
