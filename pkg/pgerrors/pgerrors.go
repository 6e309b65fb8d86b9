package pgerrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrSerializationFailure помечает ошибки класса 40 (serialization_failure,
// transaction_rollback): сериализуемая транзакция проиграла гонку и может
// быть безопасно повторена клиентом
var ErrSerializationFailure = errors.New("pgerrors: serialization failure")

// Classify оборачивает err сентинелом ErrSerializationFailure, если внутри
// цепочки лежит *pq.Error класса 40. Остальные ошибки возвращаются как есть
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "40" {
		return fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}

	return err
}
