package customer

import "strings"

// Customer は顧客エンティティを表す
// bookings は上映ID→座席IDリストの予約台帳で、
// キーが存在しないことが「その上映の予約なし」を意味する
// 空の座席リストを持つキーは存在してはならない
type Customer struct {
	ID           string
	Name         string
	Email        string
	Cash         int
	TotalPayable int
	bookings     map[string][]string
}

// NewCustomer は新しい顧客を作成する
func NewCustomer(id, name, email string, cash int) *Customer {
	return &Customer{
		ID:       id,
		Name:     name,
		Email:    email,
		Cash:     cash,
		bookings: make(map[string][]string),
	}
}

// Debit は現金残高から金額を差し引く
func (c *Customer) Debit(amount int) error {
	if c.Cash < amount {
		return ErrInsufficientFunds
	}
	c.Cash -= amount
	return nil
}

// AddPayable は支払累計に金額を加算する
func (c *Customer) AddPayable(amount int) {
	c.TotalPayable += amount
}

// AddBooking は予約台帳に (上映, 座席) を記録する
// 上映のエントリは初回予約時に明示的に作成される
func (c *Customer) AddBooking(showID, seatID string) {
	c.bookings[showID] = append(c.bookings[showID], seatID)
}

// HasBooking は (上映, 座席) が予約台帳に存在するかを返す
func (c *Customer) HasBooking(showID, seatID string) bool {
	for _, id := range c.bookings[showID] {
		if id == seatID {
			return true
		}
	}
	return false
}

// RemoveBooking は予約台帳から (上映, 座席) を取り除く
// 上映の最後の座席が取り除かれた場合はキーごと削除する
func (c *Customer) RemoveBooking(showID, seatID string) error {
	seats, ok := c.bookings[showID]
	if !ok {
		return ErrBookingNotFound
	}
	for i, id := range seats {
		if id == seatID {
			seats = append(seats[:i], seats[i+1:]...)
			if len(seats) == 0 {
				delete(c.bookings, showID)
			} else {
				c.bookings[showID] = seats
			}
			return nil
		}
	}
	return ErrBookingNotFound
}

// Bookings は予約台帳のスナップショットを返す
func (c *Customer) Bookings() map[string][]string {
	snapshot := make(map[string][]string, len(c.bookings))
	for showID, seats := range c.bookings {
		ids := make([]string, len(seats))
		copy(ids, seats)
		snapshot[showID] = ids
	}
	return snapshot
}

// BookingCount は予約中の座席総数を返す
func (c *Customer) BookingCount() int {
	count := 0
	for _, seats := range c.bookings {
		count += len(seats)
	}
	return count
}

// Validate は顧客の検証を行う
func (c *Customer) Validate() error {
	if c.ID == "" {
		return ErrCustomerIDRequired
	}
	if c.Name == "" {
		return ErrCustomerNameRequired
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if c.Cash < 0 {
		return ErrInvalidCash
	}
	return nil
}
