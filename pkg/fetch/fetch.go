package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type Header struct {
	Name  string
	Value string
}

type Req struct {
	URL     string
	Method  string
	Headers []Header
}

type Res struct {
	StatusCode     int
	ResponseLength int
	PageTitle      string
	BodyString     string
}

// Do sends the request with the given client (http.DefaultClient when nil)
// and reads the whole body. For HTML bodies the <title> text is extracted
// into PageTitle.
func Do(ctx context.Context, r *Req, client *http.Client) (*Res, error) {
	method := r.Method
	if method == "" {
		method = "GET"
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, nil)
	if err != nil {
		return nil, err
	}

	// Set common headers
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:83.0) Gecko/20100101 Firefox/83.0")
	req.Header.Set("Accept-Language", "en")

	// Set custom headers
	for _, h := range r.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	res := &Res{
		StatusCode: resp.StatusCode,
		BodyString: string(bodyBytes),
	}

	if title, ok := htmlTitle(res.BodyString); ok {
		res.PageTitle = strings.ToValidUTF8(strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(title, "\n", ""), "\r", "")), "")
	}

	res.ResponseLength = utf8.RuneCountInString(res.BodyString)
	return res, nil
}

func isTitleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "title"
}

func traverse(n *html.Node) (string, bool) {
	if isTitleElement(n) {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result, ok := traverse(c)
		if ok {
			return result, ok
		}
	}

	return "", false
}

func htmlTitle(body string) (string, bool) {
	if !strings.Contains(body, "<title") {
		return "", false
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", false
	}

	return traverse(doc)
}
