package cloudinary

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			"plain",
			"https://res.cloudinary.com/demo/image/upload/Zhanyixia/services/1717-a1b2c3.png",
			"Zhanyixia/services/1717-a1b2c3", true,
		},
		{
			"with version",
			"https://res.cloudinary.com/demo/image/upload/v1717000000/Zhanyixia/services/x.jpg",
			"Zhanyixia/services/x", true,
		},
		{
			"with transformation and version",
			"https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_800/v1717/Zhanyixia/services/x.webp",
			"Zhanyixia/services/x", true,
		},
		{
			"no extension",
			"https://res.cloudinary.com/demo/image/upload/folder/name",
			"folder/name", true,
		},
		{
			"folder starting with v is not a version",
			"https://res.cloudinary.com/demo/image/upload/videos2024/x.png",
			"videos2024/x", true,
		},
		{"foreign url", "https://example.com/some/image.png", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PublicIDFromURL(tc.url)
			if got != tc.want || ok != tc.ok {
				t.Errorf("PublicIDFromURL(%q) = (%q, %v), want (%q, %v)", tc.url, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestBuildOptimizedImageURL(t *testing.T) {
	url := BuildOptimizedImageURL("demo", "folder/x", 0)
	want := "https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_800,c_fill/folder/x"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}
