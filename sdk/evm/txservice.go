package evm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gnosisguild/zodiac/sdk"
	sdkerrors "github.com/gnosisguild/zodiac/sdk/errors"
	"github.com/gnosisguild/zodiac/types"
)

var _ sdk.TxService = (*TxService)(nil)

const txServiceOrigin = "zodiac"

// TxService proposes transactions to the Safe Transaction Service.
type TxService struct {
	baseURL    string
	httpClient *http.Client
	client     ContractCaller
	signer     Signer
	contracts  ContractsResolver
}

// TxServiceOption configures a TxService.
type TxServiceOption func(*TxService)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) TxServiceOption {
	return func(s *TxService) {
		s.httpClient = c
	}
}

// WithTxServiceContracts replaces the default contract registry.
func WithTxServiceContracts(resolver ContractsResolver) TxServiceOption {
	return func(s *TxService) {
		s.contracts = resolver
	}
}

// NewTxService creates a TxService talking to the transaction service at baseURL. The client
// reads the Safe nonce and the signer must be a Safe owner or delegate.
func NewTxService(baseURL string, client ContractCaller, signer Signer, opts ...TxServiceOption) *TxService {
	s := &TxService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		client:     client,
		signer:     signer,
		contracts:  DefaultContracts,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type proposeRequest struct {
	To                      string  `json:"to"`
	Value                   string  `json:"value"`
	Data                    *string `json:"data"`
	Operation               uint8   `json:"operation"`
	SafeTxGas               string  `json:"safeTxGas"`
	BaseGas                 string  `json:"baseGas"`
	GasPrice                string  `json:"gasPrice"`
	GasToken                *string `json:"gasToken"`
	RefundReceiver          *string `json:"refundReceiver"`
	Nonce                   uint64  `json:"nonce"`
	ContractTransactionHash string  `json:"contractTransactionHash"`
	Sender                  string  `json:"sender"`
	Signature               string  `json:"signature"`
	Origin                  string  `json:"origin"`
}

type multisigTxResponse struct {
	Safe                  common.Address       `json:"safe"`
	To                    common.Address       `json:"to"`
	Value                 string               `json:"value"`
	Data                  *hexutil.Bytes       `json:"data"`
	Operation             types.Operation      `json:"operation"`
	Nonce                 uint64               `json:"nonce"`
	SafeTxHash            common.Hash          `json:"safeTxHash"`
	ConfirmationsRequired uint64               `json:"confirmationsRequired"`
	Confirmations         []types.Confirmation `json:"confirmations"`
	IsExecuted            bool                 `json:"isExecuted"`
	TransactionHash       *common.Hash         `json:"transactionHash"`
}

func (r multisigTxResponse) toSafeTransaction() *types.SafeTransaction {
	tx := &types.SafeTransaction{
		SafeTxHash:            r.SafeTxHash,
		Safe:                  r.Safe,
		To:                    r.To,
		Value:                 r.Value,
		Operation:             r.Operation,
		Nonce:                 r.Nonce,
		ConfirmationsRequired: r.ConfirmationsRequired,
		Confirmations:         r.Confirmations,
		IsExecuted:            r.IsExecuted,
		TransactionHash:       r.TransactionHash,
	}
	if r.Data != nil {
		tx.Data = *r.Data
	}

	return tx
}

// Send batches the transactions, signs the Safe transaction at the next free nonce and
// proposes it. It returns the safeTxHash.
func (s *TxService) Send(ctx context.Context, session sdk.Session, txs []types.Transaction) (common.Hash, error) {
	if s.signer == nil {
		return common.Hash{}, errors.New("transaction service needs a signer to propose")
	}

	contracts, err := s.contracts(session.ChainID())
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := Batch(contracts.MultiSend, txs)
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := s.Nonce(ctx, session.SafeAddress())
	if err != nil {
		return common.Hash{}, err
	}

	safeTx := NewSafeTx(session.SafeAddress(), session.ChainID(), tx, nonce)
	hash, err := safeTx.Hash()
	if err != nil {
		return common.Hash{}, err
	}
	sig, err := s.signer.SignSafeTx(safeTx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign safe transaction: %w", err)
	}
	sender, err := s.signer.GetAddress()
	if err != nil {
		return common.Hash{}, err
	}

	var data *string
	if len(tx.Data) > 0 {
		encoded := hexutil.Encode(tx.Data)
		data = &encoded
	}
	body, err := json.Marshal(proposeRequest{
		To:                      tx.To.Hex(),
		Value:                   tx.ValueOrZero().String(),
		Data:                    data,
		Operation:               uint8(tx.Operation),
		SafeTxGas:               "0",
		BaseGas:                 "0",
		GasPrice:                "0",
		Nonce:                   nonce,
		ContractTransactionHash: hash.Hex(),
		Sender:                  sender.Hex(),
		Signature:               hexutil.Encode(sig),
		Origin:                  txServiceOrigin,
	})
	if err != nil {
		return common.Hash{}, err
	}

	endpoint := fmt.Sprintf("%s/api/v1/safes/%s/multisig-transactions/", s.baseURL, session.SafeAddress().Hex())
	if err := s.do(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return common.Hash{}, err
	}

	sdk.LoggerFrom(ctx).Infof("proposed safe transaction %s with nonce %d", hash.Hex(), nonce)

	return hash, nil
}

// GetBySafeTxHash returns the multisig transaction stored for the hash.
func (s *TxService) GetBySafeTxHash(ctx context.Context, safeTxHash common.Hash) (*types.SafeTransaction, error) {
	var res multisigTxResponse
	endpoint := fmt.Sprintf("%s/api/v1/multisig-transactions/%s/", s.baseURL, safeTxHash.Hex())
	if err := s.do(ctx, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, err
	}

	return res.toSafeTransaction(), nil
}

type multisigTxPage struct {
	Count   uint64               `json:"count"`
	Results []multisigTxResponse `json:"results"`
}

// Nonce returns the nonce the next proposal should use. It starts from the Safe's on-chain
// nonce and skips past any proposals still queued in the transaction service.
func (s *TxService) Nonce(ctx context.Context, safe common.Address) (uint64, error) {
	out, err := callContract(ctx, s.client, common.Address{}, safe, AvatarABI, "nonce")
	if err != nil {
		return 0, err
	}
	onchain, ok := out[0].(*big.Int)
	if !ok || !onchain.IsUint64() {
		return 0, fmt.Errorf("unexpected safe nonce %v", out[0])
	}
	nonce := onchain.Uint64()

	query := url.Values{}
	query.Set("executed", "false")
	query.Set("nonce__gte", strconv.FormatUint(nonce, 10))
	query.Set("ordering", "-nonce")
	query.Set("limit", "1")
	endpoint := fmt.Sprintf("%s/api/v1/safes/%s/multisig-transactions/?%s", s.baseURL, safe.Hex(), query.Encode())

	var page multisigTxPage
	if err := s.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return 0, fmt.Errorf("failed to list queued transactions: %w", err)
	}
	for _, queued := range page.Results {
		if queued.Nonce >= nonce {
			nonce = queued.Nonce + 1
		}
	}

	return nonce, nil
}

func (s *TxService) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return sdkerrors.NewTxServiceError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode transaction service response: %w", err)
	}

	return nil
}
