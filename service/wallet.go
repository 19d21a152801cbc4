package service

import (
	"net/http"
	"strconv"

	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/rgb"
)

func (s *Service) GetAddress(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	address, err := s.client.GetAddress(backendContext(r))
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Debug("Address fetched", logging.String("address", address))
	writeText(w, address)
}

func (s *Service) GetBalance(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	balance, err := s.client.GetBtcBalance(backendContext(r))
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Debug("Balance fetched", logging.Uint64("balance", balance))
	writeText(w, strconv.FormatUint(balance, 10))
}

func (s *Service) ListUnspents(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	unspents, err := s.client.ListUnspents(backendContext(r))
	if err != nil {
		writeError(log, w, err)
		return
	}
	if unspents == nil {
		unspents = []rgb.Unspent{}
	}

	log.Debug("Unspents fetched", logging.Int("count", len(unspents)))
	writeSuccess(w, unspents, http.StatusOK)
}

func (s *Service) SendBTC(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	req := SendBTCRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("Sending BTC",
		logging.String("address", *req.Address),
		logging.Uint64("amount", *req.Amount),
		logging.Float32("fee-rate", *req.FeeRate),
	)

	txID, err := s.client.SendBtc(backendContext(r), *req.Address, *req.Amount, *req.FeeRate)
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("BTC sent successfully",
		logging.String("tx-id", txID),
		logging.String("recipient", *req.Address),
	)
	writeText(w, txID)
}

func (s *Service) PrepareIssuance(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	req := PrepareIssuanceRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("Preparing UTXOs", logging.Float32("fee-rate", req.FeeRateOrDefault()))

	count, err := s.client.CreateUtxos(backendContext(r), req.FeeRateOrDefault())
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("UTXOs created successfully", logging.Uint8("count", count))
	writeText(w, strconv.FormatUint(uint64(count), 10))
}
