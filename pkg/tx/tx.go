package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакции, которые репозитории подхватывают из контекста
// через pgxv5.CtxGetter.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		// Порядок записей в одну ячейку держат advisory-локи, изоляции READ COMMITTED достаточно.
		settings: pgxv5.MustSettings(
			settings.Must(),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
		),
	}
}

// Do выполняет fn в транзакции. Вложенный вызов присоединяется к внешней транзакции.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings, fn)
}
