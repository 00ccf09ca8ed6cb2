package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"kiib/internal/domain"
)

func postsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Read and manage announcements",
	}
	cmd.AddCommand(postsListCmd(), postsCreateCmd(), postsDeleteCmd())
	return cmd
}

func postsListCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				list []domain.Post
				err  error
			)
			if offline {
				list, err = wire.Posts.CachedList(cmd.Context())
			} else {
				if err := requireLogin(); err != nil {
					return err
				}
				list, err = wire.Posts.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No announcements")
				return nil
			}
			for _, p := range list {
				fmt.Fprintf(out, "#%d %s (%s)\n", p.ID, p.Title, p.CreatedAt.Format("2006-01-02"))
				fmt.Fprintf(out, "    %s\n", p.Content)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "read the last fetched posts instead of the backend")
	return cmd
}

func postsCreateCmd() *cobra.Command {
	var (
		title     string
		content   string
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish an announcement (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}

			draft := domain.PostDraft{Title: title, Content: content}
			if imagePath != "" {
				f, err := os.Open(imagePath)
				if err != nil {
					return fmt.Errorf("open image: %w", err)
				}
				defer f.Close()
				draft.Image = f
				draft.ImageName = filepath.Base(imagePath)
			}

			post, err := wire.Posts.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published announcement #%d\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "announcement title")
	cmd.Flags().StringVar(&content, "content", "", "announcement text")
	cmd.Flags().StringVar(&imagePath, "image", "", "optional image file")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func postsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an announcement (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("post id must be an integer: %w", err)
			}
			if err := wire.Posts.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted announcement #%d\n", id)
			return nil
		},
	}
}
