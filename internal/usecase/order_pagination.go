package usecase

import (
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// GET /orders のクエリ。ページ番号モードとカーソルモードは排他。
type ListOrdersInput struct {
	UserID     *string
	CustomerID *string
	StatusCode *string
	OrderDate  *time.Time

	//ページ番号モード
	Page *int

	//カーソルモード（4つ全部そろっていること）
	CursorDate  *time.Time
	CursorID    *string
	Direction   *string
	CurrentPage *int
}

const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

type paginationMode int

const (
	pageFirst paginationMode = iota //指定なし＝先頭ページ
	pageByNumber
	pageByCursor
)

type pagination struct {
	mode        paginationMode
	page        int
	cursorDate  time.Time
	cursorID    string
	backward    bool
	currentPage int
}

// ページングの指定方法を1つに決める。矛盾していたらバリデーションエラー。
// クエリは一切発行しない。
func resolvePagination(in ListOrdersInput) (pagination, error) {
	cursorFields := 0
	for _, set := range []bool{
		in.CursorDate != nil,
		in.CursorID != nil,
		in.Direction != nil,
		in.CurrentPage != nil,
	} {
		if set {
			cursorFields++
		}
	}

	if in.Page != nil && cursorFields > 0 {
		return pagination{}, NewValidationError("page and cursor parameters are mutually exclusive")
	}

	if in.Page != nil {
		if *in.Page < 1 {
			return pagination{}, NewValidationError("page must be 1 or greater")
		}
		return pagination{mode: pageByNumber, page: *in.Page}, nil
	}

	if cursorFields == 0 {
		return pagination{mode: pageFirst}, nil
	}
	if cursorFields != 4 {
		return pagination{}, NewValidationError("cursorDate, cursorId, direction and currentPage must be supplied together")
	}
	if *in.Direction != DirectionNext && *in.Direction != DirectionPrev {
		return pagination{}, NewValidationError("direction must be next or prev")
	}
	if *in.CurrentPage < 1 {
		return pagination{}, NewValidationError("currentPage must be 1 or greater")
	}

	return pagination{
		mode:        pageByCursor,
		cursorDate:  *in.CursorDate,
		cursorID:    *in.CursorID,
		backward:    *in.Direction == DirectionPrev,
		currentPage: *in.CurrentPage,
	}, nil
}

type OrderStatusView struct {
	StatusCode string `json:"statusCode"`
}

type OrderCustomerView struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

type OrderUserView struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

type OrderView struct {
	OrderID         string            `json:"orderId"`
	Status          OrderStatusView   `json:"status"`
	Customer        OrderCustomerView `json:"customer"`
	User            OrderUserView     `json:"user"`
	OrderTotal      decimal.Decimal   `json:"orderTotal"`
	OrderDate       time.Time         `json:"orderDate"`
	OrderAttachment *string           `json:"orderAttachment"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type ListOrdersOutput struct {
	Orders         []OrderView `json:"orders"`
	PrevCursorDate *time.Time  `json:"prevCursorDate"`
	PrevCursorID   *string     `json:"prevCursorId"`
	NextCursorDate *time.Time  `json:"nextCursorDate"`
	NextCursorID   *string     `json:"nextCursorId"`
	TotalPages     int         `json:"totalPages"`
	CurrentPage    int         `json:"currentPage"`
	TotalOrders    int64       `json:"totalOrders"`
}

func toOrderView(o model.Order) OrderView {
	return OrderView{
		OrderID: o.OrderID,
		Status:  OrderStatusView{StatusCode: o.Status.StatusCode},
		Customer: OrderCustomerView{
			CustomerID:   o.Customer.CustomerID,
			CustomerName: o.Customer.CustomerName,
		},
		User: OrderUserView{
			UserID:   o.User.UserID,
			UserName: o.User.UserName,
		},
		OrderTotal:      o.OrderTotal,
		OrderDate:       o.OrderDate,
		OrderAttachment: o.OrderAttachment,
		UpdatedAt:       o.UpdatedAt,
	}
}

// rowsはlimit+1件まで。ページ切り出し・フラグ・カーソルをまとめて計算する。
// TotalPages / TotalOrders は呼び出し側で埋める。
func buildOrderPage(rows []model.Order, pag pagination, pageSize int) ListOrdersOutput {
	extra := len(rows) > pageSize
	if extra {
		rows = rows[:pageSize]
	}

	//prevは昇順で取っているので表示用に降順へ戻す
	if pag.mode == pageByCursor && pag.backward {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	var hasNext, hasPrev bool
	switch {
	case pag.mode == pageByCursor && pag.backward:
		hasNext = true
		hasPrev = extra
	case pag.mode == pageByCursor:
		hasNext = extra
		hasPrev = true
	case pag.mode == pageByNumber && pag.page > 1:
		hasNext = extra
		hasPrev = true
	default:
		hasNext = extra
		hasPrev = false
	}

	out := ListOrdersOutput{Orders: make([]OrderView, 0, len(rows))}
	for _, o := range rows {
		out.Orders = append(out.Orders, toOrderView(o))
	}

	//境界行のkeysetをカーソルとして返す。フラグが立っているときだけ。
	//並行削除でバッチが空になったときは受け取ったカーソルをそのまま返し、
	//呼び出し側が同じ位置から再開できるようにする。
	if len(rows) > 0 {
		if hasNext {
			last := rows[len(rows)-1]
			d := last.OrderDate
			id := last.OrderID
			out.NextCursorDate = &d
			out.NextCursorID = &id
		}
		if hasPrev {
			first := rows[0]
			d := first.OrderDate
			id := first.OrderID
			out.PrevCursorDate = &d
			out.PrevCursorID = &id
		}
	} else if pag.mode == pageByCursor {
		if hasNext {
			d := pag.cursorDate
			id := pag.cursorID
			out.NextCursorDate = &d
			out.NextCursorID = &id
		}
		if hasPrev {
			d := pag.cursorDate
			id := pag.cursorID
			out.PrevCursorDate = &d
			out.PrevCursorID = &id
		}
	}

	switch pag.mode {
	case pageByNumber:
		out.CurrentPage = pag.page
	case pageByCursor:
		if pag.backward {
			out.CurrentPage = pag.currentPage - 1
		} else {
			out.CurrentPage = pag.currentPage + 1
		}
	default:
		out.CurrentPage = 1
	}

	return out
}
