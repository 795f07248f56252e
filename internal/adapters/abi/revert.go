package abi

import (
	"bytes"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
)

// errorSelector is the selector of Error(string)
var errorSelector = []byte{0x08, 0xc3, 0x79, 0xa0}

const revertPrefix = "execution reverted"

// DecodeRevert converts a node error into a *domain.RevertError when it carries
// revert data or a revert message. Other errors are returned unchanged.
func DecodeRevert(method string, err error) error {
	if err == nil {
		return nil
	}

	var revertErr *domain.RevertError
	if errors.As(err, &revertErr) {
		return err
	}

	if data, ok := revertData(err); ok {
		reason := ""
		if bytes.HasPrefix(data, errorSelector) {
			if unpacked, uerr := abi.UnpackRevert(data); uerr == nil {
				reason = unpacked
			}
		}
		if reason == "" {
			reason = reasonFromMessage(err.Error())
		}
		return &domain.RevertError{Method: method, Reason: reason, Data: data}
	}

	if strings.Contains(err.Error(), revertPrefix) {
		return &domain.RevertError{Method: method, Reason: reasonFromMessage(err.Error())}
	}

	return err
}

// revertData extracts the hex revert payload from a JSON-RPC data error.
func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	raw, ok := dataErr.ErrorData().(string)
	if !ok || raw == "" {
		return nil, false
	}
	data, decodeErr := hexutil.Decode(raw)
	if decodeErr != nil {
		return nil, false
	}
	return data, true
}

// reasonFromMessage pulls the reason out of "execution reverted: <reason>".
func reasonFromMessage(msg string) string {
	idx := strings.Index(msg, revertPrefix)
	if idx == -1 {
		return ""
	}
	rest := strings.TrimPrefix(msg[idx+len(revertPrefix):], ":")
	return strings.TrimSpace(rest)
}
