package theatre

// Hall は上映ホールを表す
// ホールは上映IDの集合を保持するだけの入れ物で、座席との相互不変条件は持たない
type Hall struct {
	ID      string
	showIDs []string
}

// NewHall は新しいホールを作成する
func NewHall(id string) *Hall {
	return &Hall{ID: id, showIDs: make([]string, 0)}
}

// AddShow は上映をホールに追加する
func (h *Hall) AddShow(showID string) error {
	for _, id := range h.showIDs {
		if id == showID {
			return ErrShowAlreadyInHall
		}
	}
	h.showIDs = append(h.showIDs, showID)
	return nil
}

// RemoveShow は上映をホールから取り除く
func (h *Hall) RemoveShow(showID string) error {
	for i, id := range h.showIDs {
		if id == showID {
			h.showIDs = append(h.showIDs[:i], h.showIDs[i+1:]...)
			return nil
		}
	}
	return ErrShowNotInHall
}

// ShowIDs はホールに属する上映IDのスナップショットを返す
func (h *Hall) ShowIDs() []string {
	ids := make([]string, len(h.showIDs))
	copy(ids, h.showIDs)
	return ids
}

// Theatre は劇場エンティティを表す
type Theatre struct {
	ID       string
	Location string
	halls    []*Hall
}

// Details は劇場のスナップショットを表す
type Details struct {
	ID       string   `json:"theatre_id"`
	Location string   `json:"location"`
	HallIDs  []string `json:"hall_ids"`
}

// NewTheatre は新しい劇場を作成する
func NewTheatre(id, location string) *Theatre {
	return &Theatre{ID: id, Location: location, halls: make([]*Hall, 0)}
}

// AddHall はホールを劇場に追加する
func (t *Theatre) AddHall(hall *Hall) error {
	for _, h := range t.halls {
		if h.ID == hall.ID {
			return ErrHallAlreadyAdded
		}
	}
	t.halls = append(t.halls, hall)
	return nil
}

// RemoveHall はホールを劇場から取り除く
func (t *Theatre) RemoveHall(hallID string) error {
	for i, h := range t.halls {
		if h.ID == hallID {
			t.halls = append(t.halls[:i], t.halls[i+1:]...)
			return nil
		}
	}
	return ErrHallNotFound
}

// Hall はIDからホールを取得する
func (t *Theatre) Hall(hallID string) (*Hall, error) {
	for _, h := range t.halls {
		if h.ID == hallID {
			return h, nil
		}
	}
	return nil, ErrHallNotFound
}

// Details は劇場のスナップショットを返す
func (t *Theatre) Details() Details {
	hallIDs := make([]string, 0, len(t.halls))
	for _, h := range t.halls {
		hallIDs = append(hallIDs, h.ID)
	}
	return Details{
		ID:       t.ID,
		Location: t.Location,
		HallIDs:  hallIDs,
	}
}

// Validate は劇場の検証を行う
func (t *Theatre) Validate() error {
	if t.ID == "" {
		return ErrTheatreIDRequired
	}
	if t.Location == "" {
		return ErrLocationRequired
	}
	return nil
}
