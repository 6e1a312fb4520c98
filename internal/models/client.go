package models

import (
	"errors"
	"strings"
)

type Client struct {
	ID           int64  `json:"id"`
	INN          string `json:"inn"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
	Admin        bool   `json:"admin"`
}

func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(c.Login) == "" {
		return errors.New("login required")
	}
	return nil
}
