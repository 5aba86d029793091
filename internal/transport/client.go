package transport

import (
	"net"
	"net/http"
	"time"

	"github.com/RandomSci/CapstoneProject/pkg/config"
)

// NewClient builds the default HTTP client: 60s connect, read up to 30min,
// write up to 60min, with the session jar attached. The overall request
// deadline is the sum of the read and write budgets so long uploads on slow
// links are not cut off by a blanket timeout.
func NewClient(cfg *config.Config, jar *SessionJar) *http.Client {
	return newClient(
		cfg.API.ConnectTimeoutDuration(),
		cfg.API.ReadTimeoutDuration(),
		cfg.API.WriteTimeoutDuration(),
		jar,
	)
}

// NewLargeUploadClient builds the extended-timeout tier used for uploads
// above the large-file threshold.
func NewLargeUploadClient(cfg *config.Config, jar *SessionJar) *http.Client {
	return newClient(
		time.Duration(cfg.Upload.LargeConnectTimeout)*time.Second,
		time.Duration(cfg.Upload.LargeReadTimeout)*time.Minute,
		time.Duration(cfg.Upload.LargeWriteTimeout)*time.Minute,
		jar,
	)
}

func newClient(connect, read, write time.Duration, jar *SessionJar) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   connect,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   connect,
		ResponseHeaderTimeout: read,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   read + write,
	}
	if jar != nil {
		client.Jar = jar
	}
	return client
}
