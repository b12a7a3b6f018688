// Package ai contiene los adaptadores hacia los proveedores de modelos de
// lenguaje. Usan únicamente net/http: no se necesita el SDK oficial de
// ningún proveedor para dos endpoints REST.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// healthPrompt pide prosa corta, no JSON: la narrativa se muestra tal cual
	// en el dashboard.
	healthPrompt = `You are a financial advisor for a small retail business.
Given the financial summary below, write an encouraging but honest health summary in exactly 3 short bullet points.
Plain text only, no markdown headings. Each bullet starts with "- ".`

	// receiptPrompt fuerza JSON puro vía responseMimeType.
	receiptPrompt = `You are a receipt scanner for a retail expense tracker.
Extract the data from the receipt image and return ONLY a JSON object with this exact structure:
{
  "merchant": "<store or vendor name>",
  "date": "<YYYY-MM-DD, or empty string if unreadable>",
  "total": <final total as a number>,
  "items": ["<up to 5 main line items>"]
}`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven error descriptivo en lugar de
// fallar en producción.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// receiptPayload es el JSON que esperamos recibir del modelo al escanear.
type receiptPayload struct {
	Merchant string   `json:"merchant"`
	Date     string   `json:"date"`
	Total    float64  `json:"total"`
	Items    []string `json:"items"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// SummarizeBusinessHealth envía el snapshot financiero a Gemini y devuelve la
// narrativa en texto plano.
func (s *GeminiService) SummarizeBusinessHealth(ctx context.Context, snap ports.HealthSnapshot) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: healthPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: formatSnapshot(snap)}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 512,
		},
	}

	raw, err := s.call(ctx, payload)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}

// ExtractReceipt envía la imagen del recibo como inline_data y parsea el JSON
// estructurado que devuelve el modelo.
func (s *GeminiService) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*ports.ReceiptData, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: receiptPrompt}},
		},
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: "Extract this receipt."},
					{InlineData: &geminiInlineData{
						MIMEType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.1, // baja temperatura para extracción determinista
			MaxOutputTokens:  512,
		},
	}

	raw, err := s.call(ctx, payload)
	if err != nil {
		return nil, err
	}

	var receipt receiptPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &receipt); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}

	return &ports.ReceiptData{
		Merchant: receipt.Merchant,
		Date:     receipt.Date,
		Total:    decimal.NewFromFloat(receipt.Total),
		Items:    receipt.Items,
	}, nil
}

// call hace la llamada a generateContent y devuelve el texto del primer
// candidato.
func (s *GeminiService) call(ctx context.Context, payload geminiRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}

// formatSnapshot arma el texto de usuario con el resumen financiero.
func formatSnapshot(snap ports.HealthSnapshot) string {
	low := "none"
	if len(snap.LowStockItems) > 0 {
		low = strings.Join(snap.LowStockItems, ", ")
	}
	return fmt.Sprintf(
		"Revenue: %s\nExpenses: %s\nNet profit: %s\nCompleted sales: %d\nLow stock items: %s",
		snap.Revenue.StringFixed(2),
		snap.Expenses.StringFixed(2),
		snap.NetProfit.StringFixed(2),
		snap.SaleCount,
		low,
	)
}
