package zodiac

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
)

// loadEnv reads .env when it exists. Variables already set in the environment win.
func loadEnv() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	if err := loadEnv(); err != nil {
		return nil, err
	}

	pk := os.Getenv("PRIVATE_KEY")
	if pk == "" {
		return nil, errors.New("PRIVATE_KEY not found in .env file")
	}

	return crypto.HexToECDSA(strings.TrimPrefix(pk, "0x"))
}

func dialRPC(ctx context.Context) (*ethclient.Client, error) {
	if err := loadEnv(); err != nil {
		return nil, err
	}

	rpcURL := os.Getenv("RPC_URL")
	if rpcURL == "" {
		return nil, errors.New("RPC_URL not found in .env file")
	}

	return ethclient.DialContext(ctx, rpcURL)
}

func txServiceURL() (string, error) {
	if err := loadEnv(); err != nil {
		return "", err
	}

	url := os.Getenv("TX_SERVICE_URL")
	if url == "" {
		return "", errors.New("TX_SERVICE_URL not found in .env file")
	}

	return url, nil
}
