package terminal

// DefaultQnA is the built-in question list used when no QNA_FILE is set.
var DefaultQnA = []QnA{
	{
		Question: "What technologies do you use?",
		Answer: `My tech stack includes:
• Frontend: React, Next.js, TypeScript, TailwindCSS
• Backend: Node.js, Express, Supabase, PostgreSQL
• DevOps: Git, GitHub Actions, Vercel
• Testing: Jest, React Testing Library
• Tools: VS Code, Postman, Docker

I'm always learning and adapting to new technologies to stay current with industry trends.`,
		Category: "technical",
	},
	{
		Question: "What is your experience?",
		Answer: `I have over 4 years of development experience, focusing on:
• Full-stack web development with React and Node.js
• Building scalable applications with Next.js and TypeScript
• Database design and management with PostgreSQL and Supabase
• UI/UX design and implementation
• Performance optimization and SEO
• Team collaboration and project management

I've worked on various projects ranging from small business websites to large-scale applications.`,
		Category: "experience",
	},
	{
		Question: "How can I contact you?",
		Answer: `You can reach me through:
• The contact form on this site
• GitHub: run the profile command for the link
• Portfolio: This website!

I'm always open to discussing new opportunities and collaborations.`,
		Category: "personal",
	},
	{
		Question: "What are your notable projects?",
		Answer: `Here are some of my key projects:
• Portfolio Website (This Site): Built with Next.js, TypeScript, and TailwindCSS
• Everything else is listed in the projects section below

Each project showcases different aspects of my technical abilities and problem-solving skills.`,
		Category: "project",
	},
	{
		Question: "What is your development approach?",
		Answer: `My development philosophy centers on:
• Clean, maintainable code following best practices
• Mobile-first, responsive design
• Performance optimization and accessibility
• Test-driven development when appropriate
• Continuous learning and improvement
• Strong documentation and code comments

I believe in building scalable solutions that solve real problems.`,
		Category: "technical",
	},
	{
		Question: "What are your strengths?",
		Answer: `My key strengths include:
• Strong problem-solving abilities
• Quick learning and adaptation to new technologies
• Attention to detail and code quality
• Effective communication and collaboration
• Time management and project organization
• Passion for clean, efficient code

I consistently deliver high-quality work while meeting deadlines.`,
		Category: "personal",
	},
	{
		Question: "What is your education background?",
		Answer: `My educational journey includes:
• Continuous self-learning through online platforms
• Regular participation in tech conferences and workshops
• Active involvement in developer communities

I believe in lifelong learning and staying current with industry trends.`,
		Category: "experience",
	},
	{
		Question: "What services do you offer?",
		Answer: `I offer various development services including:
• Full-stack web application development
• Frontend development and UI/UX design
• Backend development and API integration
• Performance optimization and debugging
• Technical consultation and code review
• Website maintenance and updates

Each service is tailored to meet specific client needs and requirements.`,
		Category: "professional",
	},
}
