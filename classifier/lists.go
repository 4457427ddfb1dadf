package classifier

// Static classification lists. Matching is substring containment, so each
// entry also covers its subdomains ("github.com" matches "gist.github.com").
// Not configurable at runtime.

var productiveSites = []string{
	"coursera.org",
	"khanacademy.org",
	"udemy.com",
	"classroom.google.com",
	"github.com",
	"stackoverflow.com",
	"wikipedia.org",
	"leetcode.com",
	"geeksforgeeks.org",
	"towardsdatascience.com",
	"arxiv.org",
	"openai.com",
	"docs.python.org",
	"colab.research.google.com",
	"medium.com",
	"codecademy.com",
	"freecodecamp.org",
	"edx.org",
	"pluralsight.com",
	"lynda.com",
	"skillshare.com",
	"brilliant.org",
	"mit.edu",
	"stanford.edu",
}

var unproductiveSites = []string{
	"instagram.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"reddit.com",
	"netflix.com",
	"primevideo.com",
	"spotify.com",
	"hotstar.com",
	"youtube.com",
	"tiktok.com",
	"snapchat.com",
	"discord.com",
	"twitch.tv",
	"hulu.com",
	"disneyplus.com",
	"pinterest.com",
}
