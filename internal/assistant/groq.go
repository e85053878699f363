package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"topup-admin/internal/analytics"
	"topup-admin/internal/config"
)

// GroqClient talks to an OpenAI-compatible chat completion endpoint.
type GroqClient struct {
	cfg  config.AssistantConfig
	http *http.Client
	log  zerolog.Logger
}

func NewGroqClient(cfg config.AssistantConfig, log zerolog.Logger) *GroqClient {
	return &GroqClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.With().Str("component", "groq").Logger(),
	}
}

// Enabled reports whether an API key is configured. A disabled client never
// makes network calls.
func (c *GroqClient) Enabled() bool {
	return c != nil && c.cfg.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the question with the rendered sales context as the system
// prompt and returns the model's reply.
func (c *GroqClient) Complete(ctx context.Context, salesContext, question string) (string, error) {
	system := fmt.Sprintf(`Kamu adalah asisten AI untuk RVS, sebuah toko topup game online di Indonesia. Jawab pertanyaan dalam Bahasa Indonesia dengan ramah dan informatif. Gunakan data penjualan berikut sebagai dasar jawabanmu:

%s

Berikan jawaban yang spesifik berdasarkan data di atas. Gunakan format Rupiah dengan pemisah titik untuk angka besar.`, salesContext)

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: question},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat completion: status %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// RenderContext flattens the query context into the textual summary embedded
// in the system prompt.
func RenderContext(qc *analytics.QueryContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "RINGKASAN PENJUALAN:\n")
	fmt.Fprintf(&b, "- Total Revenue: Rp %s\n", rupiah(qc.TotalRevenue))
	fmt.Fprintf(&b, "- Total Profit: Rp %s\n", rupiah(qc.TotalProfit))
	fmt.Fprintf(&b, "- Total Transaksi: %d\n", qc.TotalTransactions)
	fmt.Fprintf(&b, "- Profit Margin: %s%%\n", pct(qc.ProfitMargin))
	fmt.Fprintf(&b, "- Rata-rata Order: Rp %s\n", rupiahF(qc.AvgOrderValue))
	fmt.Fprintf(&b, "- Total User: %d (aktif: %d)\n", qc.TotalUsers, qc.ActiveUsers)

	b.WriteString("\nPERFORMA PER GAME:\n")
	for i, g := range qc.GamePerformance {
		fmt.Fprintf(&b, "%d. %s: Rp %s revenue, %d transaksi, %d unique players, margin %s%%\n",
			i+1, g.Name, rupiah(g.Revenue), g.Transactions, g.UniqueUsers, pct(g.ProfitMargin))
	}

	b.WriteString("\nPENJUALAN PER BULAN:\n")
	for _, m := range qc.Months {
		fmt.Fprintf(&b, "- %s: Rp %s revenue, %d transaksi\n", m.Name, rupiah(m.Revenue), m.Transactions)
	}

	b.WriteString("\nPRODUK TERLARIS:\n")
	for i, p := range qc.TopProducts {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s: %d terjual, Rp %s revenue\n", i+1, p.Name, p.Sold, rupiah(p.Revenue))
	}

	b.WriteString("\nMETODE PEMBAYARAN:\n")
	for _, pm := range qc.PaymentMethods {
		fmt.Fprintf(&b, "- %s: %d transaksi, Rp %s\n", pm.Method, pm.Count, rupiah(pm.Amount))
	}

	return b.String()
}
