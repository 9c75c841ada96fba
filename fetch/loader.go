package fetch

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const userAgent = "Mozilla/5.0 (compatible; browser/0.1)"

// Loader fetches whole resources over HTTP, blocking the caller until the
// response body has been read.
type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewLoaderWithClient lets tests and embedders supply their own transport.
func NewLoaderWithClient(client *http.Client) *Loader {
	return &Loader{client: client}
}

// FetchResource loads the whole resource at u and returns the final URL after
// any redirects along with the response body.
func (l *Loader) FetchResource(u *url.URL) (*url.URL, []byte, error) {
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building request for %s", u)
	}
	req.Header.Set("User-Agent", userAgent)

	logrus.Debugf("fetching resource %s", u)
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "fetching %s", u)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("fetching %s: unexpected status %s", u, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading body of %s", u)
	}
	// resp.Request points at the last request of the redirect chain.
	return resp.Request.URL, body, nil
}
