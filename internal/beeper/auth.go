package beeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/oauth2"
)

// Beeper Desktop exposes a local OAuth flow for issuing API access tokens.
const (
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"
	callbackAddr  = "localhost:8089"
)

// oauthConfig builds the OAuth config for the desktop app at baseURL.
func oauthConfig(baseURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    "beeper-cli",
		RedirectURL: "http://" + callbackAddr + "/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  baseURL + authorizePath,
			TokenURL: baseURL + tokenPath,
		},
	}
}

// LoadToken loads a saved access token from tokenFile.
func LoadToken(tokenFile string) (*oauth2.Token, error) {
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		return nil, err
	}

	return token, nil
}

// SaveToken persists an access token to tokenFile with owner-only permissions.
func SaveToken(tokenFile string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(tokenFile, data, 0600)
}

// Authenticate runs the browser-based OAuth flow against the desktop app and
// persists the resulting token.
func Authenticate(ctx context.Context, baseURL, tokenFile string) (*oauth2.Token, error) {
	config := oauthConfig(baseURL)
	state := fmt.Sprintf("%d", time.Now().UnixNano())

	codeChan := make(chan string)
	errChan := make(chan error)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			errChan <- fmt.Errorf("invalid state parameter")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no code in callback")
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><h1>Authentication successful!</h1><p>You can close this window.</p></body></html>`)
		codeChan <- code
	})

	server := &http.Server{Addr: callbackAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()
	defer server.Shutdown(ctx)

	authURL := config.AuthCodeURL(state)

	fmt.Println("Opening browser to approve access in Beeper Desktop...")
	fmt.Println("If the browser doesn't open, visit this URL:")
	fmt.Println(authURL)
	fmt.Println()

	openBrowser(authURL)

	var code string
	select {
	case code = <-codeChan:
	case err := <-errChan:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("authentication timeout")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	if err := SaveToken(tokenFile, token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	return token, nil
}

// AccessToken returns a valid access token from tokenFile, refreshing and
// re-persisting it when expired. It never starts an interactive flow; callers
// direct the user to 'beeper login' on failure.
func AccessToken(ctx context.Context, baseURL, tokenFile string) (string, error) {
	token, err := LoadToken(tokenFile)
	if err != nil {
		return "", fmt.Errorf("no saved token (run 'beeper login'): %w", err)
	}

	if token.Valid() {
		return token.AccessToken, nil
	}

	source := oauthConfig(baseURL).TokenSource(ctx, token)
	fresh, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to refresh token (run 'beeper login'): %w", err)
	}

	if fresh.AccessToken != token.AccessToken {
		_ = SaveToken(tokenFile, fresh)
	}

	return fresh.AccessToken, nil
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return
	}

	_ = cmd.Start()
}
