package server

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
)

// configureTLS applies the configured TLS mode to the HTTP server.
// In "disabled" mode the server is left untouched and serves plain HTTP.
func (s *Server) configureTLS(httpServer *http.Server) error {
	mode := s.TLSConfig.Mode
	if mode == "" || mode == "disabled" {
		return nil
	}

	tlsConfig, err := s.buildTLSConfig()
	if err != nil {
		return fmt.Errorf("failed to build TLS configuration: %w", err)
	}

	httpServer.TLSConfig = tlsConfig
	return nil
}

// buildTLSConfig constructs a tls.Config for "server" or "mutual" mode.
func (s *Server) buildTLSConfig() (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if s.TLSConfig.MinVersion == "1.3" {
		cfg.MinVersion = tls.VersionTLS13
	}

	if s.TLSConfig.CertFile == "" || s.TLSConfig.KeyFile == "" {
		return nil, fmt.Errorf("TLS mode %q requires both certFile and keyFile", s.TLSConfig.Mode)
	}

	cert, err := tls.LoadX509KeyPair(s.TLSConfig.CertFile, s.TLSConfig.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}
	cfg.Certificates = []tls.Certificate{cert}

	if s.TLSConfig.Mode == "mutual" {
		if s.TLSConfig.CAFile == "" {
			return nil, fmt.Errorf("mutual TLS requires a caFile for client verification")
		}

		caPEM, err := os.ReadFile(s.TLSConfig.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}

		caPool := x509.NewCertPool()
		if !caPool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("failed to parse CA certificate from %s", s.TLSConfig.CAFile)
		}

		cfg.ClientCAs = caPool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return cfg, nil
}
