package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/processors/bluedog"
	"merchant_gateway/internal/infrastructure/processors/bluedogv2"
	"merchant_gateway/internal/infrastructure/processors/epn"
	"merchant_gateway/internal/usecase/interfaces"
	mock_interfaces "merchant_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCard = &entities.CreditCard{
	Number:            "4111111111111111",
	Month:             9,
	Year:              2030,
	VerificationValue: "123",
	FirstName:         "Longbob",
	LastName:          "Longsen",
}

func newEPN(t *testing.T, client interfaces.HTTPClient) *Gateway[*epn.Response] {
	t.Helper()
	p, err := epn.New(entities.ProcessorConfig{
		Processor:   epn.Name,
		Test:        true,
		Credentials: map[string]string{epn.CredentialAccount: "080880", epn.CredentialRestrictKey: "yFqqXJh9Pqnugfr"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New[*epn.Response](p, client, nil)
}

func newBluedog(t *testing.T, client interfaces.HTTPClient) *Gateway[*bluedog.Response] {
	t.Helper()
	p, err := bluedog.New(entities.ProcessorConfig{
		Processor:   bluedog.Name,
		Credentials: map[string]string{bluedog.CredentialLogin: "demo", bluedog.CredentialPassword: "password"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New[*bluedog.Response](p, client, nil)
}

func reply(status int, body string) *interfaces.HTTPResponse {
	return &interfaces.HTTPResponse{StatusCode: status, Body: []byte(body)}
}

func TestGateway_DelimitedScenarios(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockHTTPClient(ctrl)
	gw := newEPN(t, client)

	t.Run("approved", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(200,
			`"YAPPROVED 184752","AVS Match 9 Digit Zip and Address (X)","CVV2 Match (M)","23","20080828140719-080880-23"`), nil)

		res, err := gw.Purchase(context.Background(), 1000, testCard, entities.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Authorization != "20080828140719-080880-23" {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.AVSCode() != "X" || res.CVVCode() != "M" {
			t.Fatalf("unexpected avs/cvv: %+v", res)
		}
		if res.Processor != epn.Name || res.Operation != entities.OperationSale || !res.Test || res.Raw == nil {
			t.Fatalf("result not stamped: %+v", res)
		}
		if res.ErrorCode != "" {
			t.Fatalf("success must not carry an error code: %+v", res)
		}
	})

	t.Run("declined", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(200,
			`"NDECLINED","Postal Code match (P)","CVV2 Match (M)","337587","20150914161218-080880-337587-0"`), nil)

		res, err := gw.Purchase(context.Background(), 1000, testCard, entities.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.ErrorCode != entities.ErrorCardDeclined {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unparseable 200 is a parse error", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(200, `<html>maintenance</html>`), nil)

		_, err := gw.Purchase(context.Background(), 1000, testCard, entities.Options{})
		var parseErr *entities.ParseError
		if !errors.As(err, &parseErr) || parseErr.Format != "delimited" {
			t.Fatalf("expected delimited ParseError, got %v", err)
		}
		if !errors.Is(err, entities.ErrMalformedResponse) || errors.Is(err, entities.ErrTransport) {
			t.Fatalf("unexpected error chain: %v", err)
		}
	})

	t.Run("server error status is a transport error", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(503, `Service Unavailable`), nil)

		_, err := gw.Purchase(context.Background(), 1000, testCard, entities.Options{})
		var transportErr *entities.TransportError
		if !errors.As(err, &transportErr) || transportErr.StatusCode != 503 {
			t.Fatalf("expected TransportError with status 503, got %v", err)
		}
	})

	t.Run("network failure is a transport error", func(t *testing.T) {
		netErr := errors.New("connection reset by peer")
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, netErr)

		_, err := gw.Capture(context.Background(), 1000, "20080828140719-080880-23", entities.Options{})
		if !errors.Is(err, entities.ErrTransport) || !errors.Is(err, netErr) {
			t.Fatalf("expected wrapped transport error, got %v", err)
		}
	})
}

func TestGateway_KeyValueScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockHTTPClient(ctrl)
	gw := newBluedog(t, client)

	client.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.HTTPRequest) (*interfaces.HTTPResponse, error) {
			if req.Method != "POST" || !strings.Contains(string(req.Body), "type=sale") {
				t.Fatalf("unexpected request: %s %s", req.Method, req.Body)
			}
			return reply(200, "response=1&responsetext=SUCCESS&authcode=123456&transactionid=3325976945&avsresponse=N&cvvresponse=N&response_code=100"), nil
		})

	res, err := gw.Purchase(context.Background(), 100, testCard, entities.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || res.Authorization != "3325976945" || res.Message != "Transaction was approved." {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Test {
		t.Fatalf("live config reported as test: %+v", res)
	}
}

func TestGateway_JSONScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockHTTPClient(ctrl)
	p, err := bluedogv2.New(entities.ProcessorConfig{
		Processor:   bluedogv2.Name,
		Test:        true,
		Credentials: map[string]string{bluedogv2.CredentialAPIKey: "key"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gw := New[*bluedogv2.Response](p, client, nil)

	t.Run("success", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(200, `{"status":"success","msg":"success","data":{"id":"abc123"}}`), nil)

		res, err := gw.Authorize(context.Background(), 500, testCard, entities.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Authorization != "abc123" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("html error page is a transport error", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(404, `<html>not found</html>`), nil)

		_, err := gw.Void(context.Background(), "abc123", entities.Options{})
		var transportErr *entities.TransportError
		if !errors.As(err, &transportErr) || transportErr.StatusCode != 404 {
			t.Fatalf("expected TransportError with status 404, got %v", err)
		}
		if errors.Is(err, entities.ErrMalformedResponse) {
			t.Fatalf("error page must not be reported as a parse error: %v", err)
		}
	})

	t.Run("unrelated json object is a parse error", func(t *testing.T) {
		client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(200, `{"unexpected":true}`), nil)

		_, err := gw.Capture(context.Background(), 500, "abc123", entities.Options{})
		var parseErr *entities.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})
}

func TestGateway_LocalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No EXPECT: any HTTP call fails the test.
	client := mock_interfaces.NewMockHTTPClient(ctrl)
	gw := newEPN(t, client)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() (entities.GatewayResult, error)
		want error
	}{
		{"negative amount", func() (entities.GatewayResult, error) { return gw.Purchase(ctx, -1, testCard, entities.Options{}) }, entities.ErrInvalidAmount},
		{"zero amount rejected by epn", func() (entities.GatewayResult, error) { return gw.Authorize(ctx, 0, testCard, entities.Options{}) }, entities.ErrInvalidAmount},
		{"missing card", func() (entities.GatewayResult, error) { return gw.Purchase(ctx, 100, nil, entities.Options{}) }, entities.ErrMissingCard},
		{"missing authorization", func() (entities.GatewayResult, error) { return gw.Refund(ctx, 100, "", entities.Options{}) }, entities.ErrMissingAuthorization},
		{"unsupported update", func() (entities.GatewayResult, error) { return gw.UpdateStored(ctx, "v1", testCard, entities.Options{}) }, entities.ErrUnsupportedOperation},
		{"unsupported unstore", func() (entities.GatewayResult, error) { return gw.Unstore(ctx, "v1", entities.Options{}) }, entities.ErrUnsupportedOperation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGateway_ZeroAmountPassesThroughForBluedog(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockHTTPClient(ctrl)
	gw := newBluedog(t, client)

	client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(reply(200, "response=3&responsetext=Invalid amount&response_code=300"), nil)

	res, err := gw.Authorize(context.Background(), 0, testCard, entities.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGateway_VerifyVoidsApprovedAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockHTTPClient(ctrl)
	gw := newBluedog(t, client)

	gomock.InOrder(
		client.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.HTTPRequest) (*interfaces.HTTPResponse, error) {
				body := string(req.Body)
				if !strings.Contains(body, "type=auth") || !strings.Contains(body, "amount=1.00") {
					t.Fatalf("expected a 1.00 authorization, got %s", body)
				}
				return reply(200, "response=1&responsetext=SUCCESS&transactionid=111&response_code=100"), nil
			}),
		client.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.HTTPRequest) (*interfaces.HTTPResponse, error) {
				body := string(req.Body)
				if !strings.Contains(body, "type=void") || !strings.Contains(body, "transactionid=111") {
					t.Fatalf("expected a void of 111, got %s", body)
				}
				return reply(200, "response=3&responsetext=Already voided&response_code=300"), nil
			}),
	)

	res, err := gw.Verify(context.Background(), testCard, entities.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || res.Authorization != "111" || res.Operation != entities.OperationAuthorize {
		t.Fatalf("verify must report the authorization: %+v", res)
	}
}

func TestGateway_TranscriptIsScrubbed(t *testing.T) {
	req := interfaces.HTTPRequest{
		Method:  "POST",
		URL:     "https://example.test/transact.php",
		Body:    []byte("username=demo&password=secret&ccnumber=4111111111111111&cvv=123"),
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	}
	p, err := bluedog.New(entities.ProcessorConfig{
		Processor:   bluedog.Name,
		Credentials: map[string]string{bluedog.CredentialLogin: "demo", bluedog.CredentialPassword: "secret"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := p.Scrub(transcript(req, reply(200, "response=1")))
	for _, secret := range []string{"secret", "4111111111111111", "cvv=123"} {
		if strings.Contains(out, secret) {
			t.Fatalf("transcript leaks %q: %s", secret, out)
		}
	}
	if !strings.Contains(out, "<- 200") {
		t.Fatalf("transcript missing status: %s", out)
	}
}
