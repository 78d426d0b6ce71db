// Package view рисует экран списка пользователей в текстовом виде.
package view

import (
	"fmt"
	"io"

	"user-directory/internal/state"
)

// RenderUserList выводит одно из трёх представлений: загрузка, ошибка или список.
func RenderUserList(w io.Writer, s state.State) error {
	if s.IsLoading {
		_, err := fmt.Fprintln(w, "Loading users...")
		return err
	}

	if s.IsError {
		_, err := fmt.Fprintln(w, "Error")
		return err
	}

	if _, err := fmt.Fprintf(w, "User List\nTotal Users: %d\n", len(s.Users)); err != nil {
		return err
	}
	for _, u := range s.Users {
		if _, err := fmt.Fprintf(w, "  #%s  %s  %s\n", u.ID, u.Name, u.Avatar); err != nil {
			return err
		}
	}
	return nil
}
