package zeamster

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"merchant_gateway/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

const approvedBody = `{"transaction":{"id":"11e95f8ec39de8fbdb0a4f1a","reason_code_id":1000,"status_id":101,"verbiage":"APPROVED","auth_code":"123456","avs_enhanced":"Y","cvv_response":"M"}}`

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	p, err := New(entities.ProcessorConfig{
		Processor: Name,
		Test:      true,
		Credentials: map[string]string{
			CredentialUserID: "11e95f8ec39de8fbdb0a4f1a", CredentialAPIKey: "secret-key", CredentialDeveloperID: "dev-1",
		},
	})
	require.NoError(t, err)
	return p
}

func normalize(t *testing.T, p *Processor, status int, body string) entities.GatewayResult {
	t.Helper()
	resp, _, err := p.Parse([]byte(body))
	require.NoError(t, err)
	return p.Normalize(entities.OperationSale, status, resp)
}

func TestNew_MissingCredentials(t *testing.T) {
	_, err := New(entities.ProcessorConfig{Processor: Name, Credentials: map[string]string{CredentialUserID: "u"}})
	require.True(t, errors.Is(err, entities.ErrMissingCredential))
	var cfgErr *entities.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, []string{CredentialAPIKey, CredentialDeveloperID}, cfgErr.Missing)
}

func TestNormalize(t *testing.T) {
	p := newTestProcessor(t)

	t.Run("approved", func(t *testing.T) {
		res := normalize(t, p, 201, approvedBody)
		require.True(t, res.Success)
		require.Equal(t, "11e95f8ec39de8fbdb0a4f1a", res.Authorization)
		require.Equal(t, "APPROVED", res.Message)
		require.Equal(t, "Y", res.AVSCode())
		require.Equal(t, "M", res.CVVCode())
		require.Empty(t, res.ErrorCode)
	})

	t.Run("reason code in range but http status out of range", func(t *testing.T) {
		res := normalize(t, p, 206, approvedBody)
		require.False(t, res.Success)
	})

	t.Run("declined", func(t *testing.T) {
		res := normalize(t, p, 201, `{"transaction":{"id":"t-2","reason_code_id":"1622","verbiage":"EXPIRED CARD"}}`)
		require.False(t, res.Success)
		require.Equal(t, entities.ErrorExpiredCard, res.ErrorCode)
		require.Equal(t, "EXPIRED CARD", res.Message)
	})

	t.Run("unclassified reason code", func(t *testing.T) {
		res := normalize(t, p, 201, `{"transaction":{"id":"t-3","reason_code_id":1300,"verbiage":"Held"}}`)
		require.False(t, res.Success)
		require.Empty(t, res.ErrorCode)
		require.Equal(t, "Held", res.Message)
	})

	t.Run("validation errors", func(t *testing.T) {
		res := normalize(t, p, 422, `{"errors":{"transaction_amount":["Transaction Amount must be greater than 0"],"account_number":["Invalid"]}}`)
		require.False(t, res.Success)
		require.Equal(t, entities.ErrorProcessingError, res.ErrorCode)
		require.Equal(t, "account_number: Invalid; transaction_amount: Transaction Amount must be greater than 0", res.Message)
	})

	t.Run("unauthorized", func(t *testing.T) {
		res := normalize(t, p, 401, `{"name":"Unauthorized","message":"Your request was made with invalid credentials."}`)
		require.False(t, res.Success)
		require.Equal(t, entities.ErrorConfigError, res.ErrorCode)
		require.Equal(t, "Unauthorized", res.Message)
	})

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, normalize(t, p, 200, approvedBody), normalize(t, p, 200, approvedBody))
	})
}

func TestParse(t *testing.T) {
	p := newTestProcessor(t)

	t.Run("unrecognized object", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"unexpected":true}`, `{"errors":null}`} {
			_, _, err := p.Parse([]byte(body))
			require.ErrorIs(t, err, errUnrecognizedReply, body)
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, _, err := p.Parse([]byte(`<html>oops</html>`))
		require.Error(t, err)
	})

	t.Run("authentication failure envelope", func(t *testing.T) {
		resp, _, err := p.Parse([]byte(`{"name":"Unauthorized","message":"Your request was made with invalid credentials."}`))
		require.NoError(t, err)
		require.Nil(t, resp.Transaction)
	})
}

func TestBuild(t *testing.T) {
	p := newTestProcessor(t)
	card := &entities.CreditCard{Number: "4111111111111111", Month: 9, Year: 2030, VerificationValue: "123", FirstName: "Longbob", LastName: "Longsen"}

	t.Run("sale", func(t *testing.T) {
		req, err := p.Build(entities.ChargeRequest{
			Operation: entities.OperationSale,
			Amount:    1050,
			Card:      card,
			Options: entities.Options{
				OrderDescription: strings.Repeat("x", 80),
				EmailReceipt:     true,
				Email:            "joe@example.com",
				BillingAddress:   &entities.Address{Address1: "456 My Street", Zip: "K1C2N6"},
			},
		})
		require.NoError(t, err)
		require.Equal(t, "POST", req.Method)
		require.Equal(t, testURL+"/transactions", req.URL)
		require.Equal(t, "dev-1", req.Headers["Developer-ID"])
		require.Equal(t, "secret-key", req.Headers["User-API-Key"])

		var body struct {
			Transaction map[string]any `json:"transaction"`
		}
		require.NoError(t, json.Unmarshal(req.Body, &body))
		tx := body.Transaction
		require.Equal(t, "sale", tx["action"])
		require.Equal(t, 10.5, tx["transaction_amount"])
		require.Equal(t, "0930", tx["exp_date"])
		require.Equal(t, "Longbob Longsen", tx["account_holder_name"])
		require.Equal(t, "joe@example.com", tx["notification_email_address"])
		require.Len(t, tx["description"], 64)
		require.Equal(t, "456 My Street", tx["billing_street"])
		require.NotContains(t, tx, "tax")
	})

	t.Run("method-aware routing", func(t *testing.T) {
		cases := []struct {
			op     entities.Operation
			method string
			url    string
			action string
		}{
			{entities.OperationAuthorize, "POST", testURL + "/transactions", "authonly"},
			{entities.OperationCapture, "POST", testURL + "/transactions/t-1", "authcomplete"},
			{entities.OperationVoid, "PUT", testURL + "/transactions/t-1", "void"},
			{entities.OperationRefund, "POST", testURL + "/transactions", "refund"},
		}
		for _, tc := range cases {
			req, err := p.Build(entities.ChargeRequest{Operation: tc.op, Amount: 100, Authorization: "t-1", Card: card})
			require.NoError(t, err)
			require.Equal(t, tc.method, req.Method, tc.op)
			require.Equal(t, tc.url, req.URL, tc.op)
			require.Contains(t, string(req.Body), `"action":"`+tc.action+`"`)
		}
	})

	t.Run("refund references previous transaction", func(t *testing.T) {
		req, err := p.Build(entities.ChargeRequest{Operation: entities.OperationRefund, Amount: 250, Authorization: "t-1"})
		require.NoError(t, err)
		require.JSONEq(t, `{"transaction":{"action":"refund","payment_method":"cc","transaction_amount":2.5,"previous_transaction_id":"t-1"}}`, string(req.Body))
	})

	t.Run("zero amount passes through", func(t *testing.T) {
		req, err := p.Build(entities.ChargeRequest{Operation: entities.OperationSale, Amount: 0, Card: card})
		require.NoError(t, err)
		require.Contains(t, string(req.Body), `"transaction_amount":0`)
	})

	t.Run("store is unsupported", func(t *testing.T) {
		require.False(t, p.Supports(entities.OperationStore))
	})
}

func TestScrub(t *testing.T) {
	p := newTestProcessor(t)
	out := p.Scrub("User-API-Key: secret-key\n" + `{"transaction":{"account_number":"4111111111111111","cvv":"123"}}`)
	require.NotContains(t, out, "secret-key")
	require.NotContains(t, out, "4111111111111111")
	require.NotContains(t, out, `"cvv":"123"`)
}
