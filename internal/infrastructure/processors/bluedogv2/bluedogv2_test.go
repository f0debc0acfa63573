package bluedogv2

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"

	"github.com/stretchr/testify/require"
)

const approvedBody = `{"status":"success","msg":"success","data":{"id":"abc123","type":"sale","amount":1000,"response":"approved","response_code":100,"response_body":{"card":{"auth_code":"TAS123","avs_response_code":"Y","cvv_response_code":"M","processor_response_text":"APPROVAL TAS123"}}}}`

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	p, err := New(entities.ProcessorConfig{Processor: Name, Test: true, Credentials: map[string]string{CredentialAPIKey: "api_123"}})
	require.NoError(t, err)
	return p
}

func normalize(t *testing.T, p *Processor, op entities.Operation, body string) entities.GatewayResult {
	t.Helper()
	resp, _, err := p.Parse([]byte(body))
	require.NoError(t, err)
	return p.Normalize(op, 200, resp)
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := New(entities.ProcessorConfig{Processor: Name})
	require.True(t, errors.Is(err, entities.ErrMissingCredential))
}

func TestNormalize(t *testing.T) {
	p := newTestProcessor(t)

	t.Run("envelope status only", func(t *testing.T) {
		res := normalize(t, p, entities.OperationSale, `{"status":"success","data":{"id":"abc123"}}`)
		require.True(t, res.Success)
		require.Equal(t, "abc123", res.Authorization)
		require.Empty(t, res.ErrorCode)
	})

	t.Run("approved with card section", func(t *testing.T) {
		res := normalize(t, p, entities.OperationAuthorize, approvedBody)
		require.True(t, res.Success)
		require.Equal(t, "APPROVAL TAS123", res.Message)
		require.Equal(t, "Y", res.AVSCode())
		require.Equal(t, "M", res.CVVCode())
	})

	t.Run("declined maps response code", func(t *testing.T) {
		res := normalize(t, p, entities.OperationSale, `{"status":"success","data":{"id":"d1","response":"declined","response_code":"223","response_body":{"card":{}}}}`)
		require.False(t, res.Success)
		require.Equal(t, entities.ErrorExpiredCard, res.ErrorCode)
		require.Equal(t, "Expired card.", res.Message)
	})

	t.Run("validation failure without data", func(t *testing.T) {
		res := normalize(t, p, entities.OperationCapture, `{"status":"failed","msg":"transaction not found","data":null}`)
		require.False(t, res.Success)
		require.Equal(t, "transaction not found", res.Message)
		require.Empty(t, res.Authorization)
		require.Nil(t, res.AVS)
	})

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, normalize(t, p, entities.OperationSale, approvedBody), normalize(t, p, entities.OperationSale, approvedBody))
	})
}

func TestParse_Malformed(t *testing.T) {
	p := newTestProcessor(t)
	_, _, err := p.Parse([]byte("<html>oops</html>"))
	require.Error(t, err)
	_, _, err = p.Parse(nil)
	require.ErrorIs(t, err, wire.ErrEmptyBody)
}

func TestParse_UnrecognizedObject(t *testing.T) {
	p := newTestProcessor(t)
	for _, body := range []string{`{}`, `{"msg":"hello"}`, `{"unexpected":true}`} {
		_, _, err := p.Parse([]byte(body))
		require.ErrorIs(t, err, errUnrecognizedReply, body)
	}
	_, _, err := p.Parse([]byte(`{"status":"error","msg":"The amount field is required."}`))
	require.NoError(t, err)
}

func TestBuild(t *testing.T) {
	p := newTestProcessor(t)

	t.Run("sale", func(t *testing.T) {
		req, err := p.Build(entities.ChargeRequest{
			Operation: entities.OperationSale,
			Amount:    1000,
			Card:      &entities.CreditCard{Number: "4111111111111111", Month: 9, Year: 2030, VerificationValue: "123", FirstName: "Longbob", LastName: "Longsen"},
			Options: entities.Options{
				EmailReceipt:   true,
				BillingAddress: &entities.Address{Address1: "456 My Street", Zip: "K1C2N6", Email: "joe@example.com"},
			},
		})
		require.NoError(t, err)
		require.Equal(t, "POST", req.Method)
		require.Equal(t, testURL+"/transaction", req.URL)
		require.Equal(t, "api_123", req.Headers["Authorization"])

		var body map[string]any
		require.NoError(t, json.Unmarshal(req.Body, &body))
		require.Equal(t, "sale", body["type"])
		require.EqualValues(t, 1000, body["amount"])
		require.Equal(t, "USD", body["currency"])
		require.Equal(t, true, body["email_receipt"])
		require.Equal(t, "joe@example.com", body["email_address"])
		card := body["payment_method"].(map[string]any)["card"].(map[string]any)
		require.Equal(t, "09/30", card["expiration_date"])
		require.Equal(t, "keyed", card["entry_type"])
		billing := body["billing_address"].(map[string]any)
		require.Equal(t, "456 My Street", billing["address_line_1"])
		require.Equal(t, "K1C2N6", billing["postal_code"])
		shipping := body["shipping_address"].(map[string]any)
		require.Equal(t, map[string]any{"email": "joe@example.com"}, shipping)
		require.NotContains(t, body, "tax_amount")
		require.NotContains(t, body, "po_number")
	})

	t.Run("follow-ups are routed by reference", func(t *testing.T) {
		for op, suffix := range map[entities.Operation]string{
			entities.OperationCapture: "/transaction/abc123/capture",
			entities.OperationRefund:  "/transaction/abc123/refund",
			entities.OperationVoid:    "/transaction/abc123/void",
		} {
			req, err := p.Build(entities.ChargeRequest{Operation: op, Amount: 500, Authorization: "abc123"})
			require.NoError(t, err)
			require.Equal(t, testURL+suffix, req.URL)
		}
	})

	t.Run("zero amount is sent explicitly", func(t *testing.T) {
		card := &entities.CreditCard{Number: "4111111111111111", Month: 9, Year: 2030}
		for _, op := range []entities.Operation{entities.OperationSale, entities.OperationCapture, entities.OperationRefund} {
			req, err := p.Build(entities.ChargeRequest{Operation: op, Amount: 0, Card: card, Authorization: "abc123"})
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(req.Body, &body))
			require.Contains(t, body, "amount", op)
			require.EqualValues(t, 0, body["amount"], op)
			require.Contains(t, string(req.Body), `"amount":0`, op)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := p.Build(entities.ChargeRequest{Operation: entities.OperationStore})
		require.ErrorIs(t, err, entities.ErrUnsupportedOperation)
		require.False(t, p.Supports(entities.OperationStore))
	})
}

func TestScrub(t *testing.T) {
	p := newTestProcessor(t)
	req, err := p.Build(entities.ChargeRequest{Operation: entities.OperationSale, Amount: 100, Card: &entities.CreditCard{Number: "4111111111111111", Month: 1, Year: 2030, VerificationValue: "987"}})
	require.NoError(t, err)
	out := p.Scrub("Authorization: api_123\n" + string(req.Body))
	require.False(t, strings.Contains(out, "4111111111111111"))
	require.False(t, strings.Contains(out, "987"))
	require.False(t, strings.Contains(out, "api_123"))
}
