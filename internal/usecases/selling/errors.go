package selling

import "errors"

var (
	ErrSaleNotFound     = errors.New("venda não encontrada")
	ErrRefreshCancelled = errors.New("atualização de vendas interrompida")
)
