package report

import (
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mgerb/subreddit-viewer/model"
	"github.com/olekukonko/tablewriter"
)

// WriteStats writes a markdown table of posts grouped by author, the authors
// with the most posts first.
func WriteStats(w io.Writer, posts []model.RedditPost) {
	groupedPosts := groupByAuthor(posts)

	countList := [][]model.RedditPost{}
	for _, v := range groupedPosts {
		countList = append(countList, v)
	}

	// sort by post count, then author for a stable table
	sort.Slice(countList, func(i, j int) bool {
		if len(countList[i]) != len(countList[j]) {
			return len(countList[i]) > len(countList[j])
		}
		return countList[i][0].Author < countList[j][0].Author
	})

	data := [][]string{}
	for _, v := range countList {
		title := "[" + escape(v[0].Title) + "](" + redditURL + v[0].Permalink + ")"
		data = append(data, []string{v[0].Author, strconv.Itoa(len(v)), title, strconv.Itoa(v[0].Score)})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Author", "Total", "Top Post", "Score"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(data)
	table.Render()
}

func groupByAuthor(posts []model.RedditPost) map[string][]model.RedditPost {
	groupedPosts := map[string][]model.RedditPost{}

	for _, v := range posts {
		groupedPosts[v.Author] = append(groupedPosts[v.Author], v)
	}

	// highest score first inside each group
	for _, v := range groupedPosts {
		sort.SliceStable(v, func(i, j int) bool {
			return v[i].Score > v[j].Score
		})
	}

	return groupedPosts
}

// WriteListing writes a plain table of a fetched listing.
func WriteListing(w io.Writer, tab model.Tab, posts []model.Post, now time.Time) {
	data := [][]string{}
	for i, p := range posts {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			p.Title,
			p.Author,
			strconv.Itoa(p.Score),
			strconv.Itoa(p.NumComments),
			TimeAgo(p.Created(), now),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", tab.String(), "Author", "Score", "Comments", "Posted"})
	table.AppendBulk(data)
	table.Render()
}

// TimeAgo formats then relative to now, e.g. "3 hours ago".
func TimeAgo(then, now time.Time) string {
	return humanize.RelTime(then, now, "ago", "from now")
}
