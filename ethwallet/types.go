package ethwallet

// Address is the response to CreateAddress.
type Address struct {
	// Address is the newly issued deposit address.
	Address string `json:"address"`
}

// Transaction is the response to Send.
type Transaction struct {
	// Hash is the transaction hash assigned by the server.
	Hash string `json:"hash"`

	// Amount echoes the amount sent.
	Amount string `json:"amount"`

	// Address echoes the destination address.
	Address string `json:"address"`
}
