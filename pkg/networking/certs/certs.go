package certs

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"
)

// GetExtraCaCert returns the certificates specified via extraCertificateLocation
// as a PEM formatted byte slice and as a list of certificates.
func GetExtraCaCert(extraCertificateLocation string) ([]byte, []*x509.Certificate, error) {
	var resultAsByte []byte
	var err error
	var resultAsCert []*x509.Certificate

	if len(extraCertificateLocation) > 0 {
		resultAsByte, err = os.ReadFile(extraCertificateLocation)
	} else {
		return resultAsByte, resultAsCert, err
	}

	// check if the cert file is a valid PEM content
	if err == nil {
		resultAsCert, err = GetAllCerts(resultAsByte)
	}

	if err != nil {
		resultAsByte = nil
		resultAsCert = nil
	}

	return resultAsByte, resultAsCert, err
}

// GetAllCerts decodes all certificates given in the PEM formatted input slice and
// returns them as a list. It returns an error if any of the content is not a certificate.
func GetAllCerts(pemData []byte) ([]*x509.Certificate, error) {
	var result []*x509.Certificate
	for len(pemData) > 0 {
		var b *pem.Block
		b, pemData = pem.Decode(pemData)

		if b == nil && len(pemData) > 0 {
			return nil, fmt.Errorf("data contains non certificate")
		} else if b == nil {
			break
		}

		if strings.ToLower(b.Type) != "certificate" {
			return nil, fmt.Errorf("data contains non certificate")
		}

		cert, err := x509.ParseCertificate(b.Bytes)
		if err != nil {
			return nil, err
		}

		result = append(result, cert)
	}

	return result, nil
}

// AddCertificatesToPool adds the certificates from extraCertificateLocation to the given pool.
func AddCertificatesToPool(pool *x509.CertPool, extraCertificateLocation string) error {
	_, extraCertList, err := GetExtraCaCert(extraCertificateLocation)
	if err != nil {
		return err
	}

	// append extra ca certificates if specified
	for _, currentCert := range extraCertList {
		if currentCert != nil {
			pool.AddCert(currentCert)
		}
	}

	return err
}
