package sale

import (
	"github.com/xiebiao/lanchonete/internal/domain/user"
)

// Transition 一次状态变更的结果
type Transition struct {
	From Status
	To   Status

	// Changed 为false表示无需写库（例如重复取消）
	Changed bool

	// RestoreStock 需要把明细数量回补到库存
	RestoreStock bool
}

// ConfirmPayment 顾客确认付款：AGUARDANDO_PAGAMENTO -> PAGO
// 仅订单所有者可操作
func (s *Sale) ConfirmPayment(caller user.Caller) (Transition, error) {
	if !s.IsOwnedBy(caller) {
		return Transition{}, ErrForbidden
	}
	if s.Status != StatusAwaitingPayment {
		return Transition{}, CannotBePaid(s.Status)
	}
	t := Transition{From: s.Status, To: StatusPaid, Changed: true}
	s.Status = StatusPaid
	return t, nil
}

// ChangeStatus 店员修改订单状态
//   - 目标为CANCELADO：回补库存；已取消的订单再次取消不做任何事
//   - CANCELADO是终态，不能再改成其他状态
//   - 不能改回AGUARDANDO_PAGAMENTO
//   - 其余状态直接写入
func (s *Sale) ChangeStatus(caller user.Caller, target Status) (Transition, error) {
	if !caller.IsStaff() {
		return Transition{}, ErrForbidden
	}
	if !target.Valid() {
		return Transition{}, InvalidStatus(target)
	}
	if target == StatusAwaitingPayment {
		return Transition{}, ErrAwaitingPaymentTarget
	}

	t := Transition{From: s.Status, To: target}
	if s.Status == StatusCancelled {
		if target == StatusCancelled {
			return t, nil
		}
		return Transition{}, CancelledIsFinal()
	}
	if target == s.Status {
		return t, nil
	}

	t.Changed = true
	t.RestoreStock = target == StatusCancelled
	s.Status = target
	return t, nil
}
