package objects

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/MohitAryal/Database-for-social-media/internal/models"
)

func ptr(v int64) *int64 { return &v }

func comment(id int64, replyTo *int64) models.Comment {
	return models.Comment{
		ID:        id,
		PostID:    1,
		UserID:    1,
		Content:   "c",
		CreatedAt: time.Unix(id, 0).UTC(),
		ReplyTo:   replyTo,
	}
}

// shape renders a forest as "id(child,child)" for compact comparison
func shape(forest []*Comment) string {
	out := ""
	for i, n := range forest {
		if i > 0 {
			out += ","
		}
		out += strconv.FormatInt(n.ID, 10)
		if len(n.Replies) > 0 {
			out += "(" + shape(n.Replies) + ")"
		}
	}
	return out
}

func TestBuildCommentForest(t *testing.T) {
	tests := []struct {
		name     string
		comments []models.Comment
		want     string
	}{
		{"empty", nil, ""},
		{"roots only", []models.Comment{comment(1, nil), comment(2, nil)}, "1,2"},
		{
			"nested",
			[]models.Comment{comment(1, nil), comment(2, ptr(1)), comment(3, ptr(2)), comment(4, nil), comment(5, ptr(1))},
			"1(2(3),5),4",
		},
		{
			"orphan dropped with its replies",
			[]models.Comment{comment(1, nil), comment(2, ptr(99)), comment(3, ptr(2))},
			"1",
		},
		{
			"self reference dropped",
			[]models.Comment{comment(1, nil), comment(2, ptr(2))},
			"1",
		},
		{
			"reply before parent in input",
			[]models.Comment{comment(2, ptr(1)), comment(1, nil)},
			"1(2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest := BuildCommentForest(tt.comments)
			if got := shape(forest); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			for _, root := range forest {
				if root.ReplyTo != nil {
					t.Errorf("Root %d has reply_to set", root.ID)
				}
			}
		})
	}
}

func TestBuildCommentForestVisitsEachOnce(t *testing.T) {
	comments := []models.Comment{
		comment(1, nil), comment(2, ptr(1)), comment(3, ptr(1)),
		comment(4, ptr(3)), comment(5, nil), comment(6, ptr(5)),
	}

	seen := map[int64]int{}
	WalkComments(BuildCommentForest(comments), func(c *Comment, depth int) bool {
		seen[c.ID]++
		return true
	})

	if len(seen) != len(comments) {
		t.Errorf("Expected %d nodes, got %d", len(comments), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Comment %d visited %d times", id, n)
		}
	}
}

func TestWalkComments(t *testing.T) {
	forest := BuildCommentForest([]models.Comment{
		comment(1, nil), comment(2, ptr(1)), comment(3, ptr(2)), comment(4, nil),
	})

	var order []int64
	var depths []int
	WalkComments(forest, func(c *Comment, depth int) bool {
		order = append(order, c.ID)
		depths = append(depths, depth)
		return true
	})

	wantOrder := []int64{1, 2, 3, 4}
	wantDepth := []int{0, 1, 2, 0}
	for i := range wantOrder {
		if order[i] != wantOrder[i] || depths[i] != wantDepth[i] {
			t.Fatalf("Expected %v at depths %v, got %v at %v", wantOrder, wantDepth, order, depths)
		}
	}

	var visited int
	WalkComments(forest, func(c *Comment, depth int) bool {
		visited++
		return c.ID != 2
	})
	if visited != 2 {
		t.Errorf("Expected walk to stop after 2 nodes, got %d", visited)
	}
}

func TestCommentList(t *testing.T) {
	list := CommentList([]models.Comment{comment(1, nil), comment(2, ptr(1))})
	if len(list) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(list))
	}
	for _, c := range list {
		if c.Replies == nil || len(c.Replies) != 0 {
			t.Errorf("Flat list entries must have empty replies, got %v", c.Replies)
		}
	}

	body, err := json.Marshal(list[0])
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["reply_to"]; !ok {
		t.Error("Expected reply_to to be present as null")
	}
	if replies, ok := decoded["replies"].([]interface{}); !ok || len(replies) != 0 {
		t.Errorf("Expected empty replies array, got %v", decoded["replies"])
	}
}

func TestNewCommentDetails(t *testing.T) {
	c := comment(1, nil)
	c.Replies = []models.Comment{comment(2, ptr(1)), comment(3, ptr(1))}
	c.Likes = []models.CommentLike{{ID: 7, CommentID: 1, UserID: 9}}

	d := NewCommentDetails(&c)
	if d.ID != 1 || len(d.Replies) != 2 || d.Replies[1].ID != 3 {
		t.Errorf("Unexpected replies: %+v", d.Replies)
	}
	if len(d.Likes) != 1 || d.Likes[0].UserID != 9 {
		t.Errorf("Unexpected likes: %+v", d.Likes)
	}
}

func TestNewPost(t *testing.T) {
	p := &models.Post{ID: 3, UserID: 1, Content: "hello"}
	obj := NewPost(p)
	if obj.Categories == nil {
		t.Error("Expected empty categories slice, got nil")
	}

	p.Categories = []models.Category{{ID: 1, Title: "news"}}
	if got := NewPost(p).Categories; len(got) != 1 || got[0].Title != "news" {
		t.Errorf("Unexpected categories: %+v", got)
	}
}
