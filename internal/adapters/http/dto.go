package http

import "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"

// Request bodies of the /api endpoints. Result bodies are the domain
// records themselves.

type HoroscopeRequest struct {
	BirthData domain.BirthData `json:"birthData"`
	Lang      string           `json:"lang"`
}

type DivinationRequest struct {
	Lang string `json:"lang"`
}

type DateSelectionRequest struct {
	DateSelectionData domain.DateSelectionData `json:"dateSelectionData"`
	Lang              string                   `json:"lang"`
}

type TalismanRequest struct {
	TalismanData domain.TalismanRequest `json:"talismanData"`
	Lang         string                 `json:"lang"`
}

type ChatRequest struct {
	History []domain.ChatTurn `json:"history"`
	Message string            `json:"message"`
	Lang    string            `json:"lang"`
}

type QuotesResponse struct {
	Quotes []domain.Quote `json:"quotes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
