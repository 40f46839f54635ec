package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Provider delivers a verification code to a phone number and returns the
// provider's message id when it has one.
type Provider interface {
	Send(ctx context.Context, phone, code string) (sid string, err error)
}

// DemoProvider delivers nothing. The service echoes the code back in the
// API response instead, which is how local and staging setups run.
type DemoProvider struct{}

func (DemoProvider) Send(ctx context.Context, phone, code string) (string, error) {
	return "", nil
}

// TwilioProvider sends the code through Twilio's Messages REST endpoint.
type TwilioProvider struct {
	AccountSID string
	AuthToken  string
	From       string
	HTTPClient *http.Client
}

func NewTwilioProvider(accountSID, authToken, from string) *TwilioProvider {
	return &TwilioProvider{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *TwilioProvider) Send(ctx context.Context, phone, code string) (string, error) {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", p.AccountSID)

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", p.From)
	form.Set("Body", fmt.Sprintf("Your Cemention verification code is: %s. Valid for 5 minutes.", code))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.AccountSID, p.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return "", fmt.Errorf("twilio: unexpected status %s", res.Status)
	}

	var body struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.SID, nil
}
