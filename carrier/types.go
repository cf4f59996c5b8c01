package carrier

type authRequest struct {
	Numero string `json:"numero"`
}

type authResponse struct {
	Token    string `json:"token"`
	ExpiraEm string `json:"expiraEm"`
}

type priceRequest struct {
	IdLote            string        `json:"idLote"`
	ParametrosProduto []priceParams `json:"parametrosProduto"`
}

type priceParams struct {
	CoProduto    string `json:"coProduto"`
	NuRequisicao string `json:"nuRequisicao"`
	CepOrigem    string `json:"cepOrigem"`
	CepDestino   string `json:"cepDestino"`
	PsObjeto     string `json:"psObjeto"`
}

// PriceResult is one entry of the carrier's batch price response.
// TxErro is set when the carrier declined this service code.
type PriceResult struct {
	CoProduto string `json:"coProduto"`
	PcFinal   string `json:"pcFinal"`
	TxErro    string `json:"txErro"`
}

type deadlineRequest struct {
	IdLote          string           `json:"idLote"`
	ParametrosPrazo []deadlineParams `json:"parametrosPrazo"`
}

type deadlineParams struct {
	CoProduto    string `json:"coProduto"`
	NuRequisicao string `json:"nuRequisicao"`
	CepOrigem    string `json:"cepOrigem"`
	CepDestino   string `json:"cepDestino"`
}

type DeadlineResult struct {
	CoProduto    string `json:"coProduto"`
	PrazoEntrega int    `json:"prazoEntrega"`
	TxErro       string `json:"txErro"`
}
