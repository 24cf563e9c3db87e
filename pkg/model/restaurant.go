package model

// Restaurant is the internally configured restaurant record. Zenchef is nil
// when the restaurant has never been linked to the booking platform; every
// operation that reaches the platform must treat that as a configuration
// error, not a transient one.
type Restaurant struct {
	ID                   string              `json:"id" bson:"_id,omitempty"`
	Name                 string              `json:"name" bson:"name"`
	Timezone             string              `json:"timezone" bson:"timezone"`
	MaxEscalationSeating int                 `json:"max_escalation_seating" bson:"max_escalation_seating"`
	Zenchef              *ZenchefCredentials `json:"-" bson:"zenchef,omitempty"`
}

// ZenchefCredentials authenticate calls to the booking platform for one
// restaurant.
type ZenchefCredentials struct {
	RestaurantID string `bson:"restaurant_id"`
	APIToken     string `bson:"api_token"`
}

// SeatingArea is an internally tracked room or zone, linked to the external
// platform's room identifier. Synced from the platform, read-only here.
type SeatingArea struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	RestaurantID   string `json:"restaurant_id" bson:"restaurant_id"`
	ExternalRoomID int    `json:"external_room_id" bson:"external_room_id"`
	Name           string `json:"name" bson:"name"`
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	MaxCapacity    int    `json:"max_capacity" bson:"max_capacity"`
}

// RestaurantContext bundles everything the engine needs to know about a
// restaurant for one call. It is loaded once per request and passed in
// explicitly so the engine itself performs no hidden reads.
type RestaurantContext struct {
	Restaurant   Restaurant
	SeatingAreas []SeatingArea
}
