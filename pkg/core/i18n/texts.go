// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package i18n keeps the customer facing strings of ticket receipts in
// all supported locales and provides the price, date, and duration
// formatting helpers which are shared by the text messages, emails, and
// PDF documents.
package i18n

import (
	"strings"

	"github.com/momeni/parkmock/pkg/core/model"
)

// Texts contains the strings of one locale.
type Texts struct {
	// Text messages (SMS and WhatsApp).
	TicketTitle string
	Plate       string
	Zone        string
	Start       string
	End         string
	Duration    string
	Method      string
	Amount      string
	Thanks      string
	Signature   string

	// Emails and PDF documents.
	Subject        string
	Title          string
	Subtitle       string
	Greeting       string
	Intro          string
	TicketDetails  string
	PlateLong      string
	StartTime      string
	EndTime        string
	TotalPrice     string
	Discount       string
	PaymentMethod  string
	QRTitle        string
	QRDescription  string
	PDFAttached    string
	PDFDescription string
	ImportantInfo  string
	Instructions   []string
	NoReply        string
	NoReplyText    string
	Support        string
	SupportText    string
	SupportHours   string
	GeneratedBy    string
	SentOn         string
	Copyright      string

	zones       map[string]string
	methods     map[string]string
	methodsLong map[string]string
}

var texts = map[model.Locale]*Texts{
	model.LocaleES: {
		TicketTitle: "🎫 Ticket de Estacionamiento",
		Plate:       "Matrícula",
		Zone:        "Zona",
		Start:       "Inicio",
		End:         "Fin",
		Duration:    "Duración",
		Method:      "Pago",
		Amount:      "Importe",
		Thanks:      "Gracias por su compra.",
		Signature:   "Meypark - Sistema de Gestión de Aparcamiento",

		Subject:       "Tu Ticket de Estacionamiento - Meypark",
		Title:         "Ticket de Estacionamiento",
		Subtitle:      "Sistema de Gestión de Estacionamiento Inteligente",
		Greeting:      "Estimado/a cliente,",
		Intro:         "Hemos procesado exitosamente tu pago de estacionamiento. A continuación encontrarás los detalles de tu ticket:",
		TicketDetails: "Detalles del Ticket",
		PlateLong:     "Matrícula",
		StartTime:     "Hora de Inicio",
		EndTime:       "Hora de Finalización",
		TotalPrice:    "Precio Total",
		Discount:      "Descuento Aplicado",
		PaymentMethod: "Método de Pago",
		QRTitle:       "Código QR de Verificación",
		QRDescription: "Escanea este código para verificar tu ticket con las autoridades de tráfico",
		PDFAttached:   "Ticket PDF Adjunto",
		PDFDescription: "Hemos adjuntado una versión PDF de tu ticket que puedes " +
			"imprimir o guardar en tu dispositivo.",
		ImportantInfo: "Información Importante",
		Instructions: []string{
			"Mantén este ticket visible en tu vehículo durante todo el período de estacionamiento",
			"El ticket es válido únicamente para la matrícula, zona y horario especificados",
			"Cualquier modificación o falsificación del ticket constituye una infracción",
			"En caso de inspección, presenta este email o el PDF adjunto",
		},
		NoReply: "Email Automático - No Responder",
		NoReplyText: "Este es un email automático generado por nuestro sistema. " +
			"Por favor, no respondas a este mensaje ya que no será procesado.",
		Support: "Soporte Técnico",
		SupportText: "Si tienes alguna pregunta o problema con tu ticket de " +
			"estacionamiento, no dudes en contactarnos.",
		SupportHours: "Lunes a Viernes de 9:00 a 18:00",
		GeneratedBy:  "Generado automáticamente por Meypark",
		SentOn:       "Enviado el",
		Copyright:    "2024 Meypark - Sistema de Gestión de Estacionamiento",

		zones: map[string]string{
			"coche":  "Zona Coche",
			"moto":   "Zona Moto",
			"camion": "Zona Camión",
			"green":  "Zona Verde",
			"blue":   "Zona Azul",
		},
		methods: map[string]string{
			"qr":     "QR",
			"card":   "Tarjeta",
			"cash":   "Efectivo",
			"mobile": "Móvil",
			"bizum":  "Bizum",
		},
		methodsLong: map[string]string{
			"card":   "Tarjeta de Crédito/Débito",
			"qr":     "Pago QR",
			"mobile": "Apple/Google Pay",
			"cash":   "Efectivo",
			"bizum":  "Bizum",
		},
	},
	model.LocaleCA: {
		TicketTitle: "🎫 Tiquet d'Aparcament",
		Plate:       "Matrícula",
		Zone:        "Zona",
		Start:       "Inici",
		End:         "Fi",
		Duration:    "Durada",
		Method:      "Pagament",
		Amount:      "Import",
		Thanks:      "Gràcies per la seva compra.",
		Signature:   "Meypark - Sistema de Gestió d'Aparcament",

		Subject:       "El teu Tiquet d'Aparcament - Meypark",
		Title:         "Tiquet d'Aparcament",
		Subtitle:      "Sistema de Gestió d'Aparcament Intel·ligent",
		Greeting:      "Estimat/da client,",
		Intro:         "Hem processat exitosament el teu pagament d'aparcament. A continuació trobaràs els detalls del teu tiquet:",
		TicketDetails: "Detalls del Tiquet",
		PlateLong:     "Matrícula",
		StartTime:     "Hora d'Inici",
		EndTime:       "Hora de Finalització",
		TotalPrice:    "Preu Total",
		Discount:      "Descompte Aplicat",
		PaymentMethod: "Mètode de Pagament",
		QRTitle:       "Codi QR de Verificació",
		QRDescription: "Escaneja aquest codi per verificar el teu tiquet amb les autoritats de trànsit",
		PDFAttached:   "Tiquet PDF Adjunt",
		PDFDescription: "Hem adjuntat una versió PDF del teu tiquet que pots " +
			"imprimir o guardar al teu dispositiu.",
		ImportantInfo: "Informació Important",
		Instructions: []string{
			"Mantén aquest tiquet visible al teu vehicle durant tot el període d'aparcament",
			"El tiquet és vàlid únicament per a la matrícula, zona i horari especificats",
			"Qualsevol modificació o falsificació del tiquet constitueix una infracció",
			"En cas d'inspecció, presenta aquest email o el PDF adjunt",
		},
		NoReply: "Email Automàtic - No Respondre",
		NoReplyText: "Aquest és un email automàtic generat pel nostre sistema. " +
			"Si us plau, no responguis a aquest missatge ja que no serà processat.",
		Support: "Suport Tècnic",
		SupportText: "Si tens alguna pregunta o problema amb el teu tiquet " +
			"d'aparcament, no dubtis a contactar-nos.",
		SupportHours: "Dilluns a Divendres de 9:00 a 18:00",
		GeneratedBy:  "Generat automàticament per Meypark",
		SentOn:       "Enviat el",
		Copyright:    "2024 Meypark - Sistema de Gestió d'Aparcament",

		zones: map[string]string{
			"coche":  "Zona Cotxe",
			"moto":   "Zona Moto",
			"camion": "Zona Camió",
			"green":  "Zona Verda",
			"blue":   "Zona Blava",
		},
		methods: map[string]string{
			"qr":     "QR",
			"card":   "Targeta",
			"cash":   "Efectiu",
			"mobile": "Mòbil",
			"bizum":  "Bizum",
		},
		methodsLong: map[string]string{
			"card":   "Targeta de Crèdit/Dèbit",
			"qr":     "Pagament QR",
			"mobile": "Apple/Google Pay",
			"cash":   "Efectiu",
			"bizum":  "Bizum",
		},
	},
	model.LocaleEN: {
		TicketTitle: "🎫 Parking Ticket",
		Plate:       "Plate",
		Zone:        "Zone",
		Start:       "Start",
		End:         "End",
		Duration:    "Duration",
		Method:      "Payment",
		Amount:      "Amount",
		Thanks:      "Thank you for your purchase.",
		Signature:   "Meypark - Parking Management System",

		Subject:       "Your Parking Ticket - Meypark",
		Title:         "Parking Ticket",
		Subtitle:      "Smart Parking Management System",
		Greeting:      "Dear customer,",
		Intro:         "We have successfully processed your parking payment. Below you will find the details of your ticket:",
		TicketDetails: "Ticket Details",
		PlateLong:     "License Plate",
		StartTime:     "Start Time",
		EndTime:       "End Time",
		TotalPrice:    "Total Price",
		Discount:      "Applied Discount",
		PaymentMethod: "Payment Method",
		QRTitle:       "Verification QR Code",
		QRDescription: "Scan this code to verify your ticket with traffic authorities",
		PDFAttached:   "PDF Ticket Attached",
		PDFDescription: "We have attached a PDF version of your ticket that you " +
			"can print or save on your device.",
		ImportantInfo: "Important Information",
		Instructions: []string{
			"Keep this ticket visible in your vehicle during the entire parking period",
			"The ticket is valid only for the specified plate, zone and time",
			"Any modification or falsification of the ticket constitutes an infraction",
			"In case of inspection, present this email or the attached PDF",
		},
		NoReply: "Automatic Email - Do Not Reply",
		NoReplyText: "This is an automatic email generated by our system. " +
			"Please do not reply to this message as it will not be processed.",
		Support: "Technical Support",
		SupportText: "If you have any questions or issues with your parking " +
			"ticket, please don't hesitate to contact us.",
		SupportHours: "Monday to Friday from 9:00 AM to 6:00 PM",
		GeneratedBy:  "Automatically generated by Meypark",
		SentOn:       "Sent on",
		Copyright:    "2024 Meypark - Parking Management System",

		zones: map[string]string{
			"coche":  "Car Zone",
			"moto":   "Motorcycle Zone",
			"camion": "Truck Zone",
			"green":  "Green Zone",
			"blue":   "Blue Zone",
		},
		methods: map[string]string{
			"qr":     "QR",
			"card":   "Card",
			"cash":   "Cash",
			"mobile": "Mobile",
			"bizum":  "Bizum",
		},
		methodsLong: map[string]string{
			"card":   "Credit/Debit Card",
			"qr":     "QR Payment",
			"mobile": "Apple/Google Pay",
			"cash":   "Cash",
			"bizum":  "Bizum",
		},
	},
}

// Resolve maps a client supplied locale string, such as "ca_ES" or
// "en-GB", to a supported locale. Unknown strings resolve to LocaleES.
func Resolve(locale string) model.Locale {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "ca"):
		return model.LocaleCA
	case strings.HasPrefix(l, "en"):
		return model.LocaleEN
	default:
		return model.LocaleES
	}
}

// For returns the texts of loc, falling back to Spanish.
func For(loc model.Locale) *Texts {
	if t, ok := texts[loc]; ok {
		return t
	}
	return texts[model.LocaleES]
}

// ZoneName returns the display name of zone, or zone itself when no
// translation is known.
func (t *Texts) ZoneName(zone string) string {
	if n, ok := t.zones[strings.ToLower(zone)]; ok {
		return n
	}
	return zone
}

// MethodName returns the short display name of a payment method, as
// used by text messages.
func (t *Texts) MethodName(method string) string {
	if n, ok := t.methods[strings.ToLower(method)]; ok {
		return n
	}
	return method
}

// MethodLongName returns the long display name of a payment method,
// as used by emails and PDF documents.
func (t *Texts) MethodLongName(method string) string {
	if n, ok := t.methodsLong[strings.ToLower(method)]; ok {
		return n
	}
	return method
}
