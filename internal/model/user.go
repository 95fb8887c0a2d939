package model

// User 当前用户信息，由外部协作方提供，用于新建项目的归属
type User struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
