package phonenumber

type Request struct {
	Number string `json:"number"`
}
