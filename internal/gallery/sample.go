package gallery

import "time"

// SampleProjects returns the built-in demo portfolio. The daemon seeds
// these into an empty store so the scene is never blank on first run.
func SampleProjects() []Project {
	now := time.Now().UTC()
	return []Project{
		{
			ID:          "5c9f1b1e-3f5a-4b82-9c36-1f9a2d7c4e01",
			Title:       "AI-Powered Chat Application",
			Description: "A modern chat application with AI integration, real-time messaging, and beautiful UI. Features include smart responses, conversation history, and responsive design.",
			TechStack:   []string{"React", "Node.js", "OpenAI", "Socket.io", "MongoDB"},
			ImageURL:    "https://images.unsplash.com/photo-1587620962725-abab7fe55159?auto=format&fit=crop&w=1000&q=80",
			DemoURL:     "https://demo-chat.example.com",
			GithubURL:   "https://github.com/user/ai-chat",
			Category:    "Web Application",
			CreatedDate: now,
			Featured:    true,
		},
		{
			ID:          "0d7e8a42-6b1c-4f3d-8a55-2e6b9c0d4f02",
			Title:       "3D Portfolio Website",
			Description: "An interactive 3D portfolio showcasing projects with geometric shapes and smooth animations. Built with Three.js and React for an immersive user experience.",
			TechStack:   []string{"React", "Three.js", "React Three Fiber", "FastAPI", "MongoDB"},
			ImageURL:    "https://images.unsplash.com/photo-1633356122544-f134324a6cee?auto=format&fit=crop&w=1000&q=80",
			DemoURL:     "https://portfolio-3d.example.com",
			GithubURL:   "https://github.com/user/3d-portfolio",
			Category:    "Portfolio",
			CreatedDate: now,
			Featured:    true,
		},
		{
			ID:          "9a3c5d77-1e2f-4a6b-b1c8-3d7e0f5a6b03",
			Title:       "E-commerce Platform",
			Description: "Full-stack e-commerce solution with payment integration, inventory management, and admin dashboard. Features modern design and seamless user experience.",
			TechStack:   []string{"React", "Express.js", "Stripe", "PostgreSQL", "Redis"},
			ImageURL:    "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?auto=format&fit=crop&w=1000&q=80",
			DemoURL:     "https://shop.example.com",
			GithubURL:   "https://github.com/user/ecommerce",
			Category:    "E-commerce",
			CreatedDate: now,
		},
		{
			ID:          "4b8d2f11-7c3a-4e5d-9f62-4a8b1c6d7e04",
			Title:       "Data Visualization Dashboard",
			Description: "Interactive dashboard for data analytics with charts, graphs, and real-time updates. Perfect for business intelligence and data-driven decisions.",
			TechStack:   []string{"React", "D3.js", "Python", "FastAPI", "PostgreSQL"},
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=1000&q=80",
			DemoURL:     "https://dashboard.example.com",
			GithubURL:   "https://github.com/user/dashboard",
			Category:    "Data Analytics",
			CreatedDate: now,
			Featured:    true,
		},
		{
			ID:          "7e1f9c88-5d4b-4a2e-8b73-5c9d2e7f8a05",
			Title:       "Mobile Game Development",
			Description: "Engaging mobile game with 3D graphics, physics simulation, and multiplayer capabilities. Optimized for performance across all devices.",
			TechStack:   []string{"Unity", "C#", "Firebase", "Photon", "Blender"},
			ImageURL:    "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?auto=format&fit=crop&w=1000&q=80",
			DemoURL:     "https://play.google.com/store/apps/details?id=com.example.game",
			GithubURL:   "https://github.com/user/mobile-game",
			Category:    "Game Development",
			CreatedDate: now,
		},
		{
			ID:          "2c6a4e33-8f1d-4b7c-a984-6d0e3f8a9b06",
			Title:       "Blockchain DeFi Platform",
			Description: "Decentralized finance platform with smart contracts, yield farming, and token swapping. Built on Ethereum with modern web3 integration.",
			TechStack:   []string{"Solidity", "React", "Web3.js", "Hardhat", "IPFS"},
			ImageURL:    "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?auto=format&fit=crop&w=1000&q=80",
			DemoURL:     "https://defi.example.com",
			GithubURL:   "https://github.com/user/defi-platform",
			Category:    "Blockchain",
			CreatedDate: now,
			Featured:    true,
		},
	}
}
